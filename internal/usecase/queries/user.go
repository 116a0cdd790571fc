package queries

import (
	"context"

	"github.com/google/uuid"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/infra"
	"paseos-api/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
	ErrUserCorrupt  = errs.New("stored user has an inconsistent role")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "find current user")
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}
	if err := checkRoleState(view); err != nil {
		return nil, err
	}

	return view, nil
}

// checkRoleState enforces that only walkers carry an application status.
func checkRoleState(view *AuthorizedUserView) error {
	role, err := user.NewRole(view.Role)
	if err != nil {
		return errs.Mark(err, ErrUserCorrupt)
	}
	switch {
	case role == user.RoleWalker && (view.WalkerStatus == nil || !user.WalkerStatus(*view.WalkerStatus).IsValid()):
		return errs.Wrapf(ErrUserCorrupt, "walker %s without a valid status", view.ID)
	case role != user.RoleWalker && view.WalkerStatus != nil:
		return errs.Wrapf(ErrUserCorrupt, "%s %s with a walker status", role, view.ID)
	}
	return nil
}
