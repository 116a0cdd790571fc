//go:build unit

package readstore

import (
	"context"
	"testing"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/infra"
	"paseos-api/internal/infra/db"
	"paseos-api/internal/infra/pgsql"
	"paseos-api/internal/pkg/ptr"
	"paseos-api/internal/usecase/queries"
	"paseos-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userQueriesStub struct {
	mock.Mock
}

func (m *userQueriesStub) FindUserByEmail(ctx context.Context, dbtx db.DBTX, email string) (pgsql.UserRow, error) {
	args := m.Called(email)
	return args.Get(0).(pgsql.UserRow), args.Error(1)
}

func (m *userQueriesStub) FindUserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (pgsql.UserRow, error) {
	args := m.Called(id)
	return args.Get(0).(pgsql.UserRow), args.Error(1)
}

// lookupFailure covers the error paths shared by both finders.
type lookupFailure struct {
	name string
	err  error
	kind infra.RepositoryErrorKind
}

var lookupFailures = []lookupFailure{
	{name: "no row", err: pgx.ErrNoRows, kind: infra.KindNotFound},
	{name: "driver error", err: assert.AnError, kind: infra.KindDBFailure},
}

func TestUserReadStore_FindByID(t *testing.T) {
	t.Run("maps every column of an owner", func(t *testing.T) {
		row := builder.NewUserBuilder().WithEmail("dueno@example.com").BuildRow()
		stub := new(userQueriesStub)
		stub.On("FindUserByID", row.ID).Return(row, nil).Once()

		got, err := NewUserReadStore(stub, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		want := &queries.AuthorizedUserView{
			ID:       row.ID,
			Email:    "dueno@example.com",
			Role:     "owner",
			FullName: row.FullName,
			Phone:    row.Phone,
			IsActive: true,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
		stub.AssertExpectations(t)
	})

	t.Run("walker carries the admission status", func(t *testing.T) {
		for _, status := range []user.WalkerStatus{user.WalkerStatusQuizPending, user.WalkerStatusApproved, user.WalkerStatusRejected} {
			row := builder.NewUserBuilder().AsWalker(status).BuildRow()
			stub := new(userQueriesStub)
			stub.On("FindUserByID", row.ID).Return(row, nil)

			got, err := NewUserReadStore(stub, nil).FindByID(context.Background(), row.ID)

			require.NoError(t, err)
			assert.Equal(t, "walker", got.Role)
			assert.Equal(t, ptr.Of(status.String()), got.WalkerStatus)
		}
	})

	t.Run("inactive rows are still returned", func(t *testing.T) {
		row := builder.NewUserBuilder().AsInactive().BuildRow()
		stub := new(userQueriesStub)
		stub.On("FindUserByID", row.ID).Return(row, nil)

		got, err := NewUserReadStore(stub, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	for _, tc := range lookupFailures {
		t.Run(tc.name, func(t *testing.T) {
			id := uuid.New()
			stub := new(userQueriesStub)
			stub.On("FindUserByID", id).Return(pgsql.UserRow{}, tc.err)

			got, err := NewUserReadStore(stub, nil).FindByID(context.Background(), id)

			assert.Nil(t, got)
			assert.Truef(t, infra.IsKind(err, tc.kind), "want %s, got %v", tc.kind, err)
		})
	}
}

func TestUserReadStore_FindByEmail(t *testing.T) {
	t.Run("returns the view with the stored hash", func(t *testing.T) {
		row := builder.NewUserBuilder().
			WithEmail("paseador@example.com").
			WithPasswordHash("$2a$10$storedhash").
			AsWalker(user.WalkerStatusApproved).
			BuildRow()
		stub := new(userQueriesStub)
		stub.On("FindUserByEmail", "paseador@example.com").Return(row, nil).Once()

		got, hash, err := NewUserReadStore(stub, nil).FindByEmail(context.Background(), "paseador@example.com")

		require.NoError(t, err)
		assert.Equal(t, "$2a$10$storedhash", hash)
		assert.Equal(t, row.ID, got.ID)
		assert.Equal(t, ptr.Of("approved"), got.WalkerStatus)
		stub.AssertExpectations(t)
	})

	for _, tc := range lookupFailures {
		t.Run(tc.name, func(t *testing.T) {
			stub := new(userQueriesStub)
			stub.On("FindUserByEmail", "nadie@example.com").Return(pgsql.UserRow{}, tc.err)

			got, hash, err := NewUserReadStore(stub, nil).FindByEmail(context.Background(), "nadie@example.com")

			assert.Nil(t, got)
			assert.Empty(t, hash)
			assert.Truef(t, infra.IsKind(err, tc.kind), "want %s, got %v", tc.kind, err)
		})
	}
}
