package components

import (
	"venuebook/internal/infra/cache"
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/readstore"
	"venuebook/internal/infra/uow"
	"venuebook/internal/pkg/config"
	"venuebook/internal/usecase/queries"
	"venuebook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		NewAvailabilityCache,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewAvailabilityCache(cfg config.Config, client *redis.Client) queries.AvailabilityCache {
	if client == nil {
		return cache.NewNoopAvailabilityCache()
	}
	return cache.NewRedisAvailabilityCache(client, cfg.Redis.CacheTTL)
}
