package bootstrap

import (
	"context"
	"log/slog"

	"clinic-booking/internal/infra/cache"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache falls back to a no-op cache when REDIS_ADDR is empty.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config) (shared.AvailabilityCache, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("availability cache disabled")
		return shared.NopAvailabilityCache{}, nil
	}

	client, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("availability cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL.String())
	return cache.NewAvailabilityCache(client, cfg.Redis.TTL), nil
}
