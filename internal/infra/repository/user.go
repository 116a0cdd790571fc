package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/infra"
	"paseos-api/internal/infra/db"
	"paseos-api/internal/infra/pgsql"
	"paseos-api/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, dbtx db.DBTX, arg pgsql.CreateUserParams) error
	UpdateUserLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	UpdateWalkerStatus(ctx context.Context, dbtx db.DBTX, arg pgsql.UpdateWalkerStatusParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      db.DBTX
}

func NewUserRepository(queries UserWriteQueries, db db.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	var walkerStatus pgtype.Text
	if s := u.WalkerStatus(); s != nil {
		walkerStatus = pgtype.Text{String: s.String(), Valid: true}
	}

	err := r.queries.CreateUser(ctx, r.db, pgsql.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		FullName:     u.FullName().Value(),
		Phone:        u.Phone().Value(),
		Cedula:       u.Cedula().String(),
		WalkerStatus: walkerStatus,
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, r.db, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateWalkerStatus(ctx context.Context, walkerID uuid.UUID, status user.WalkerStatus) error {
	affected, err := r.queries.UpdateWalkerStatus(ctx, r.db, pgsql.UpdateWalkerStatusParams{
		ID:           walkerID,
		WalkerStatus: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update walker status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("walker not awaiting a quiz verdict", nil, infra.KindStateConflict)
	}
	return nil
}
