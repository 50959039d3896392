package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/planner"
	"productivity-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	AnalyzePriorities(c *gin.Context)
	EstimateDurations(c *gin.Context)
	Schedule(c *gin.Context)
	Apply(c *gin.Context)
}

var _ Handler = (*handler)(nil)

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
