package ratelimit

import (
	"context"

	"github.com/salesavor/salesavor/internal/config"
	"go.uber.org/zap"
)

// RecipeGenLimiter throttles recipe generation per caller. A nil limiter
// allows every request.
type RecipeGenLimiter struct {
	bucket *TokenBucket
	rate   float64
	burst  int
	log    *zap.Logger
}

func NewRecipeGenLimiter(bucket *TokenBucket, cfg config.Config, log *zap.Logger) *RecipeGenLimiter {
	if bucket == nil {
		return nil
	}
	return &RecipeGenLimiter{
		bucket: bucket,
		rate:   cfg.RateLimit.RecipeGenRate,
		burst:  cfg.RateLimit.RecipeGenBurst,
		log:    log.Named("ratelimit.recipegen"),
	}
}

// Allow reports whether the caller may generate recipes now. Limiter errors
// fail open.
func (l *RecipeGenLimiter) Allow(ctx context.Context, clientKey string) bool {
	if l == nil || l.bucket == nil {
		return true
	}

	res, err := l.bucket.Allow(ctx, "ratelimit:recipegen:"+clientKey, l.rate, l.burst)
	if err != nil {
		l.log.Warn("rate limit check failed, allowing request", zap.Error(err))
		return true
	}

	return res.Allowed
}
