//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"paseos-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), want: infra.KindForeignKeyViolated},
		{name: "other driver error", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.want))
			assert.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), "op failed")
		})
	}

	t.Run("plain errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
	})
}
