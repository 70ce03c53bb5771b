package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/creditum/creditum/internal/config"
)

// Module wires the cache implementation selected by configuration.
var Module = fx.Options(
	fx.Provide(newCache),
)

type cacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newCache(p cacheParams) Cache {
	if p.Config.RedisAddress == "" {
		return Noop{}
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return NewRedisCache(client, p.Config.CacheTTL, p.Logger)
}
