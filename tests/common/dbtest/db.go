//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func WalkerStatus(t *testing.T, db DBLike, userID uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(t.Context(), "SELECT walker_status FROM users WHERE id = $1", userID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountQuizResults(t *testing.T, db DBLike, walkerID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(t.Context(), "SELECT count(*) FROM walker_quiz_results WHERE walker_id = $1", walkerID).Scan(&n)
	require.NoError(t, err)
	return n
}
