package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/middleware"
)

// RegisterRoutes mounts the tool endpoints behind Auth. Tool calls are
// also rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tools := rg.Group("/agent/tools", mw.Auth())
	{
		tools.GET("", h.ListTools)
		tools.POST("/:name", mw.RateLimit(), h.ExecuteTool)
	}
}
