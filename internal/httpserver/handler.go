package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"productivity-planner/internal/middleware"
	"productivity-planner/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.requestsPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == model.EnvironmentProduction {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.corsOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts every domain under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	taskUC, err := srv.setupTaskDomain(ctx, api, mw)
	if err != nil {
		return err
	}

	planUC, err := srv.setupPlannerDomain(ctx, api, mw, taskUC)
	if err != nil {
		return err
	}

	if err := srv.setupHabitDomain(ctx, api, mw); err != nil {
		return err
	}

	return srv.setupAgentDomain(ctx, api, mw, planUC)
}
