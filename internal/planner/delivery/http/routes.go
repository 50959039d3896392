package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/middleware"
)

// RegisterRoutes maps the planner endpoints. Requests are authenticated
// and rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	p := rg.Group("/planner", mw.Auth(), mw.RateLimit())
	{
		p.POST("/priorities", h.AnalyzePriorities)
		p.POST("/durations", h.EstimateDurations)
		p.POST("/schedule", h.Schedule)
		p.POST("/apply", h.Apply)
	}
}
