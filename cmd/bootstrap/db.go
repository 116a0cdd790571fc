package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"paseos-api/internal/infra/db"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

var errSchemaMissing = errs.New("database schema missing, apply migrations/001_initial_schema.sql")

// requiredTables are read on every listing, login and quiz request.
var requiredTables = []string{"users", "pets", "walks", "walker_quiz_results"}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := checkSchema(ctx, pool); err != nil {
				return err
			}
			slog.Info("database ready", "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func checkSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, table := range requiredTables {
		var present bool
		err := pool.QueryRow(ctx, "SELECT to_regclass('public.' || $1) IS NOT NULL", table).Scan(&present)
		if err != nil {
			return fmt.Errorf("check table %s: %w", table, err)
		}
		if !present {
			return errs.Wrap(errSchemaMissing, table)
		}
	}
	return nil
}
