package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"productivity-planner/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates or assigns a request id so that log lines of one
// request can be correlated.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), log.RequestIDKey, id))
		c.Next()
	}
}
