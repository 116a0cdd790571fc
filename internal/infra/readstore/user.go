package readstore

import (
	"context"

	"github.com/google/uuid"

	"paseos-api/internal/infra"
	"paseos-api/internal/infra/db"
	"paseos-api/internal/infra/pgsql"
	"paseos-api/internal/pkg/pgconv"
	"paseos-api/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (pgsql.UserRow, error)
	FindUserByEmail(ctx context.Context, dbtx db.DBTX, email string) (pgsql.UserRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      db.DBTX
}

func NewUserReadStore(queries UserReadQueries, db db.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the password hash; inactive users are returned so callers can
// tell them apart from unknown ones.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row pgsql.UserRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:           row.ID,
		Email:        row.Email,
		Role:         row.Role,
		FullName:     row.FullName,
		Phone:        row.Phone,
		WalkerStatus: pgconv.StringPtrFromPgtype(row.WalkerStatus),
		IsActive:     row.IsActive,
	}
}
