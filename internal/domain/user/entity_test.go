//go:build unit

package user_test

import (
	"testing"

	"paseos-api/internal/domain/cedula"
	"paseos-api/internal/domain/user"
	"paseos-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("owner account", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		fullName, _ := user.NewFullName("María Torres")
		phone, _ := user.NewPhone("0991234567")
		number, _ := cedula.Parse("1710034065")
		expected := user.NewUser(user.Profile{Email: email, FullName: fullName, Phone: phone, Cedula: number}, "hashed_password", user.RoleOwner)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Nil(t, actual.WalkerStatus())
		assert.Equal(t, "María Torres", actual.FullName().Value())
		assert.Equal(t, 17, actual.Cedula().Province())
	})

	t.Run("walker starts with quiz pending", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithRole("walker").BuildDomain()
		require.NoError(t, err)

		require.NotNil(t, actual.WalkerStatus())
		assert.Equal(t, user.WalkerStatusQuizPending, *actual.WalkerStatus())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "malformed", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "missing @", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "owner", mutate: func(b *builder.UserBuilder) { b.WithRole("owner") }},
			{name: "walker", mutate: func(b *builder.UserBuilder) { b.WithRole("walker") }},
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "unknown", mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") }, errIs: user.ErrInvalidRole},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("phone", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "mobile with leading zero", mutate: func(b *builder.UserBuilder) { b.WithPhone("0991234567") }},
			{name: "without leading zero", mutate: func(b *builder.UserBuilder) { b.WithPhone("991234567") }},
			{name: "with separators", mutate: func(b *builder.UserBuilder) { b.WithPhone("099-123 4567") }},
			{name: "too short", mutate: func(b *builder.UserBuilder) { b.WithPhone("09912") }, errIs: user.ErrInvalidPhone},
			{name: "letters", mutate: func(b *builder.UserBuilder) { b.WithPhone("09912345ab") }, errIs: user.ErrInvalidPhone},
		})
	})

	t.Run("full name", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "collapses whitespace", mutate: func(b *builder.UserBuilder) { b.WithFullName("  Ana   Paz ") }},
			{name: "too short", mutate: func(b *builder.UserBuilder) { b.WithFullName("Al") }, errIs: user.ErrInvalidFullName},
		})
	})

	t.Run("cedula", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithCedula("0926687856") }},
			{name: "bad checksum", mutate: func(b *builder.UserBuilder) { b.WithCedula("1710034066") }, errIs: cedula.ErrInvalid},
		})
	})
}

func TestWalkerStatusFromVerdict(t *testing.T) {
	assert.Equal(t, user.WalkerStatusApproved, user.WalkerStatusFromVerdict(true))
	assert.Equal(t, user.WalkerStatusRejected, user.WalkerStatusFromVerdict(false))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
