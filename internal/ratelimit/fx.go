package ratelimit

import (
	redis "github.com/redis/go-redis/v9"
	"github.com/salesavor/salesavor/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("rate.limit",
	fx.Provide(newRedisClient),
	fx.Provide(NewTokenBucket),
	fx.Provide(NewRecipeGenLimiter),
)

func newRedisClient(cfg config.Config) *redis.Client {
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RateLimit.RedisAddr,
		Password: cfg.RateLimit.RedisPassword,
		DB:       cfg.RateLimit.RedisDB,
	})
}
