package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"productivity-planner/internal/model"
	"productivity-planner/pkg/response"
)

// ScopeKey is the gin context key holding the caller's model.Scope.
const ScopeKey = "scope"

// Auth requires a valid "Authorization: Bearer <jwt>" header and places the
// caller's scope in both the gin context and the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		sc := model.Scope{UserID: payload.UserID, Username: payload.Username}
		c.Set(ScopeKey, sc)
		c.Request = c.Request.WithContext(model.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(ScopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok && sc.UserID != ""
}
