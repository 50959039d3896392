package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/habit"
	"productivity-planner/pkg/log"
)

// Handler is the public interface for the habit HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Log(c *gin.Context)
	Stats(c *gin.Context)
	Delete(c *gin.Context)
}

var _ Handler = (*handler)(nil)

type handler struct {
	l  log.Logger
	uc habit.UseCase
}

// New creates a new HTTP handler for the habit domain.
func New(l log.Logger, uc habit.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
