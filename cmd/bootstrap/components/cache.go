package components

import (
	"context"
	"log/slog"

	"tour-booking/internal/infra/cache"
	"tour-booking/internal/infra/readstore"
	"tour-booking/internal/pkg/config"
	"tour-booking/internal/usecase/commands"
	"tour-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewListingCache,
			fx.As(new(commands.ListingLookup)),
			fx.As(new(queries.ListingReader)),
		),
		fx.Annotate(
			NewEventMarker,
			fx.As(new(commands.EventMarker)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (redis.Cmdable, error) {
	rdb, err := cache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

func NewListingCache(rdb redis.Cmdable, source *readstore.ListingReadStore, cfg config.Config, logger *slog.Logger) *cache.ListingCache {
	return cache.NewListingCache(rdb, source, cfg.Redis.ListingTTL, logger)
}

func NewEventMarker(rdb redis.Cmdable, cfg config.Config) *cache.EventMarker {
	return cache.NewEventMarker(rdb, cfg.Redis.EventTTL)
}
