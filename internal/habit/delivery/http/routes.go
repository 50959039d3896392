package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/middleware"
)

// RegisterRoutes maps the habit endpoints behind the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	habits := rg.Group("/habits", mw.Auth())
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.POST("/:id/logs", h.Log)
		habits.GET("/:id/stats", h.Stats)
		habits.DELETE("/:id", h.Delete)
	}
}
