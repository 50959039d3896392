package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/agent"
	"productivity-planner/pkg/log"
)

// Handler exposes the tool registry over HTTP so an external agent can
// discover and call the planning tools.
type Handler interface {
	ListTools(c *gin.Context)
	ExecuteTool(c *gin.Context)
}

var _ Handler = (*handler)(nil)

type handler struct {
	l        log.Logger
	registry *agent.ToolRegistry
}

func New(l log.Logger, registry *agent.ToolRegistry) *handler {
	return &handler{
		l:        l,
		registry: registry,
	}
}
