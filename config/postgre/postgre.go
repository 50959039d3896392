package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"productivity-planner/config"
)

const (
	connectTimeout  = 10 * time.Second
	connMaxLifetime = 30 * time.Minute
)

// Connect opens the configured SQL database and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := DSN(cfg)
	if dsn == "" {
		return nil, fmt.Errorf("postgre.Connect: empty dsn for driver %q", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgre.Connect: open: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgre.Connect: ping: %w", err)
	}

	return db, nil
}

// DSN returns the connection string for cfg. An explicit DSN wins;
// otherwise a key/value postgres DSN is built from the discrete fields.
func DSN(cfg config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	if cfg.Driver != config.DriverPostgres {
		return ""
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Name, cfg.SSLMode)
	if cfg.Password != "" {
		dsn += fmt.Sprintf(" password=%s", cfg.Password)
	}
	return dsn
}

// Disconnect closes db. A nil db is a no-op.
func Disconnect(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
