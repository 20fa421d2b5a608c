package bootstrap

import (
	"context"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewBookingCache,
	),
)

type BookingCacheResult struct {
	fx.Out

	Views   queries.BookingViewCache
	Evicter commands.BookingCacheEvicter
}

func NewBookingCache(lc fx.Lifecycle, cfg config.Config) (BookingCacheResult, error) {
	if !cfg.Cache.Enabled {
		noop := cache.NoopBookingCache{}
		return BookingCacheResult{Views: noop, Evicter: noop}, nil
	}

	rdb, err := cache.NewClient(context.Background(), cfg.Cache)
	if err != nil {
		return BookingCacheResult{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	c := cache.NewRedisBookingCache(rdb, cfg.Cache.TTL)
	return BookingCacheResult{Views: c, Evicter: c}, nil
}
