package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"paseos-api/internal/infra/db"
	"paseos-api/internal/infra/pgsql"
	"paseos-api/internal/infra/repository"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a transaction that lost a lock race is replayed.
// Attempt n waits Base*2^n plus up to 20% jitter.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.Base
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(rand.Int64N(spread))
	}
	return wait
}

func (p RetryPolicy) shouldRetry(err error, attempt int) bool {
	return attempt < p.MaxRetries && isRetryableError(err)
}

// PostgresUoW runs sign-ups, logins and quiz verdicts inside one pgx transaction each.
type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *pgsql.Queries
	policy RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgsql.Queries, cfg config.Config) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
		policy: RetryPolicy{
			MaxRetries: cfg.DB.TxMaxRetries,
			Base:       cfg.DB.TxRetryBase,
		},
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) run(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}

		if !u.policy.shouldRetry(err, attempt) {
			if attempt > 0 && isRetryableError(err) {
				slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.policy.backoff(attempt)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt owns exactly one pgx transaction, so no deferred rollbacks pile up across retries.
func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX
	q    *pgsql.Queries

	users       shared.UserRepository
	quizResults shared.QuizResultRepository
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.users
}

func (t *pgTx) QuizResults() shared.QuizResultRepository {
	if t.quizResults == nil {
		t.quizResults = repository.NewQuizResultRepository(t.q, t.dbtx)
	}
	return t.quizResults
}
