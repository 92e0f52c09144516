package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

// HotelCache is read by hotel queries and invalidated by commands.
type HotelCache interface {
	queries.HotelDetailCache
	shared.HotelCacheInvalidator
}

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewHotelCache,
		func(c HotelCache) queries.HotelDetailCache { return c },
		func(c HotelCache) shared.HotelCacheInvalidator { return c },
	),
)

func NewHotelCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (HotelCache, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, hotel cache off")
		return cache.NoopHotelCache{}, nil
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
	return cache.NewHotelCache(client, cfg.Redis.TTL), nil
}
