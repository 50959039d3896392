package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"productivity-planner/pkg/response"
)

const (
	maxLimitedClients = 1000
	limiterTTL        = 5 * time.Minute
)

// RateLimit throttles each caller, keyed by user id when authenticated and
// by client IP otherwise. It is a no-op when limiting is disabled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if sc, ok := GetScope(c); ok {
			key = "user:" + sc.UserID
		}

		if err := m.rateLimiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key and forgets idle keys.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxLimitedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst:    max(requestsPerMin/10, 1),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
