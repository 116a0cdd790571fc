//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/infra"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/pkg/ptr"
	"paseos-api/internal/usecase/queries"
	"paseos-api/tests/common/builder"
	queriesmock "paseos-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	tests := []struct {
		name    string
		view    *queries.AuthorizedUserView
		findErr error
		wantErr error
	}{
		{name: "active user", view: builder.NewUserBuilder().BuildReadModel()},
		{name: "inactive user", view: builder.NewUserBuilder().AsInactive().BuildReadModel(), wantErr: queries.ErrUserInactive},
		{name: "pending walker", view: builder.NewUserBuilder().AsWalker(user.WalkerStatusQuizPending).BuildReadModel()},
		{name: "walker without status", view: builder.NewUserBuilder().WithRole("walker").BuildReadModel(), wantErr: queries.ErrUserCorrupt},
		{name: "owner with walker status", view: builder.NewUserBuilder().With(func(u *builder.UserBuilder) {
			u.WalkerStatus = ptr.Of("approved")
		}).BuildReadModel(), wantErr: queries.ErrUserCorrupt},
		{name: "unknown role", view: builder.NewUserBuilder().WithRole("groomer").BuildReadModel(), wantErr: queries.ErrUserCorrupt},
		{name: "missing user", findErr: infra.WrapRepoErr("user not found", nil, infra.KindNotFound), wantErr: queries.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(tt.view, tt.findErr).Times(1)

			got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), builder.NewUserBuilder().BuildReadModel().ID)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.view, got)
		})
	}

	t.Run("database failure is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		dbErr := infra.WrapRepoErr("failed to get user", errors.New("timeout"))
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(1)

		_, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), builder.NewUserBuilder().BuildReadModel().ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, errors.Is(err, queries.ErrUserNotFound))
	})
}
