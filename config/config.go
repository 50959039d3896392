package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Storage & auth
	Database DatabaseConfig
	JWT      JWTConfig

	// Planner settings
	Planner        PlannerConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// DatabaseConfig selects the SQL driver. Driver is "postgres" or "sqlite3".
// When DSN is empty a postgres DSN is built from the discrete fields.
type DatabaseConfig struct {
	Driver       string
	DSN          string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type PlannerConfig struct {
	Timezone      string
	WorkStartHour int
	WorkEndHour   int
	WindowDays    int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Database
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = viper.GetString("database.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	cfg.Database.Host = viper.GetString("database.host")
	cfg.Database.Port = viper.GetInt("database.port")
	cfg.Database.User = viper.GetString("database.user")
	cfg.Database.Password = viper.GetString("database.password")
	cfg.Database.Name = viper.GetString("database.name")
	cfg.Database.SSLMode = viper.GetString("database.sslmode")
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")

	// Auth
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.WorkStartHour = viper.GetInt("planner.work_start_hour")
	cfg.Planner.WorkEndHour = viper.GetInt("planner.work_end_hour")
	cfg.Planner.WindowDays = viper.GetInt("planner.window_days")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that would otherwise fail late at request time.
func (c *Config) Validate() error {
	if c.Planner.WorkStartHour < 0 || c.Planner.WorkEndHour > 24 || c.Planner.WorkStartHour >= c.Planner.WorkEndHour {
		return fmt.Errorf("planner: invalid work hours %d-%d", c.Planner.WorkStartHour, c.Planner.WorkEndHour)
	}
	if c.Planner.WindowDays < 0 || c.Planner.WindowDays > maxWindowDays {
		return fmt.Errorf("planner: window_days must be between 0 and %d", maxWindowDays)
	}
	if _, err := time.LoadLocation(c.Planner.Timezone); err != nil {
		return fmt.Errorf("planner: invalid timezone %q: %w", c.Planner.Timezone, err)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("database: unsupported driver %q", c.Database.Driver)
	}

	if c.Environment.Name == "production" && (c.JWT.Secret == "" || c.JWT.Secret == defaultJWTSecret) {
		return fmt.Errorf("jwt: secret must be set in production")
	}

	return nil
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"

	defaultJWTSecret = "change-me"

	// maxWindowDays matches the scheduler's window limit.
	maxWindowDays = 366
)

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("database.driver", DriverPostgres)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.name", "planner")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)

	viper.SetDefault("jwt.secret", defaultJWTSecret)
	viper.SetDefault("jwt.ttl", "720h")

	viper.SetDefault("planner.timezone", "America/Sao_Paulo")
	viper.SetDefault("planner.work_start_hour", 9)
	viper.SetDefault("planner.work_end_hour", 18)
	viper.SetDefault("planner.window_days", 7)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

// splitList splits a comma separated value since viper does not parse
// arrays from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
