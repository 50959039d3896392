package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"productivity-planner/config"
	pg "productivity-planner/config/postgre"
	_ "productivity-planner/docs" // Swagger docs
	"productivity-planner/internal/httpserver"
	"productivity-planner/pkg/datemath"
	"productivity-planner/pkg/gcalendar"
	"productivity-planner/pkg/log"
	"productivity-planner/pkg/scope"
)

// @title       Productivity Planner API
// @description Task store, keyword planner, habit tracking and agent tools.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Productivity Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := pg.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect database: ", err)
		os.Exit(1)
	}
	defer pg.Disconnect(context.Background(), db)

	if err := pg.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Database ready (%s)", cfg.Database.Driver)

	// 4. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Failed to load timezone %q: %v", cfg.Planner.Timezone, err)
		os.Exit(1)
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.New(ctx, gcalendar.Options{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		})
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "Run `plannerctl calendar-auth` to generate a token")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		CORSOrigins:    cfg.CORS.AllowedOrigins,
		DB:             db,
		JWTManager:     scope.New(cfg.JWT.Secret, cfg.JWT.TTL),
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		DateMath:       dateMathParser,
		Planner:        cfg.Planner,
		Calendar:       calendarClient,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
