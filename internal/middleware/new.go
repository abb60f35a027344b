package middleware

import (
	"time"

	"botschema/pkg/log"
)

// Config sizes the per-client rate limiter. PerMin 0 disables it.
type Config struct {
	RateLimitPerMin int
	CacheSize       int
	TTL             time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin, cfg.CacheSize, cfg.TTL)
	}
	return mw
}
