package middleware

import (
	"autonomous-task-extraction/config"
	"autonomous-task-extraction/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. A disabled rate limit yields a pass-through RateLimit.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled {
		mw.limiter = newRateLimiter(cfg)
	}
	return mw
}
