package middleware

import (
	"github.com/dondeestakoko/easemyday/config"
	"github.com/dondeestakoko/easemyday/pkg/log"
)

// Middleware bundles the HTTP middlewares with their dependencies.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set from config.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin, cfg.Burst),
	}
}
