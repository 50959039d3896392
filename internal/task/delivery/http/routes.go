package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/complete", h.Complete)
	}
}
