package middleware

import (
	"productivity-planner/pkg/log"
	"productivity-planner/pkg/scope"
)

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	rateLimiter *rateLimiter
}

// New builds the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, jwtManager scope.Manager, requestsPerMin int) Middleware {
	mw := Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
	if requestsPerMin > 0 {
		mw.rateLimiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
