package components

import (
	"paseos-api/internal/infra/cache"
	"paseos-api/internal/infra/db"
	"paseos-api/internal/infra/pgsql"
	"paseos-api/internal/infra/readstore"
	"paseos-api/internal/infra/uow"
	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/usecase/commands"
	"paseos-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	sessionModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Reservation, wrapped by the listing cache when Redis is up
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		NewReservationReadStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork; repositories are built per transaction
		uow.NewPostgresUoW,
	),
)

var sessionModule = fx.Module("persistence/session",
	fx.Provide(
		NewQuizSessionStore,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewReservationReadStore(q readstore.ReservationViewQueries, dbtx db.DBTX, client *redis.Client, cfg config.Config) queries.ReservationReadStore {
	base := readstore.NewReservationReadStore(q, dbtx)
	return cache.NewReservationReadStore(base, client, cfg.Redis)
}

func NewQuizSessionStore(client *redis.Client, cfg config.Config, clk clock.Clock) commands.QuizSessionStore {
	return cache.NewQuizSessionStore(client, cfg.Redis, clk)
}
