package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"productivity-planner/config"
	"productivity-planner/pkg/datemath"
	"productivity-planner/pkg/gcalendar"
	"productivity-planner/pkg/log"
	"productivity-planner/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string

	// Infrastructure
	db             *sql.DB
	jwtManager     scope.Manager
	requestsPerMin int

	// Planner
	dateMath *datemath.Parser
	planner  config.PlannerConfig
	calendar *gcalendar.Client
	calID    string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string

	DB             *sql.DB
	JWTManager     scope.Manager
	RequestsPerMin int

	DateMath   *datemath.Parser
	Planner    config.PlannerConfig
	Calendar   *gcalendar.Client // optional
	CalendarID string
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		corsOrigins:    cfg.CORSOrigins,
		db:             cfg.DB,
		jwtManager:     cfg.JWTManager,
		requestsPerMin: cfg.RequestsPerMin,
		dateMath:       cfg.DateMath,
		planner:        cfg.Planner,
		calendar:       cfg.Calendar,
		calID:          cfg.CalendarID,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
