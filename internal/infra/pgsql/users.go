package pgsql

import (
	"context"

	"github.com/google/uuid"

	"paseos-api/internal/infra/db"
)

const userColumns = `id, email, password_hash, role, full_name, phone, cedula,
	walker_status, is_active, last_login, created_at, updated_at`

const findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const createUser = `INSERT INTO users (
	id, email, password_hash, role, full_name, phone, cedula,
	walker_status, is_active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const updateUserLastLogin = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

// a verdict is only recorded once, while the application is still pending
const updateWalkerStatus = `UPDATE users SET walker_status = $2, updated_at = now()
WHERE id = $1 AND role = 'walker' AND walker_status = 'quiz_pending'`

func (q *Queries) FindUserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (UserRow, error) {
	return scanUser(dbtx.QueryRow(ctx, findUserByID, id))
}

func (q *Queries) FindUserByEmail(ctx context.Context, dbtx db.DBTX, email string) (UserRow, error) {
	return scanUser(dbtx.QueryRow(ctx, findUserByEmail, email))
}

func (q *Queries) CreateUser(ctx context.Context, dbtx db.DBTX, arg CreateUserParams) error {
	_, err := dbtx.Exec(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.PasswordHash,
		arg.Role,
		arg.FullName,
		arg.Phone,
		arg.Cedula,
		arg.WalkerStatus,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

func (q *Queries) UpdateUserLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	_, err := dbtx.Exec(ctx, updateUserLastLogin, id)
	return err
}

// UpdateWalkerStatus returns the number of rows touched; zero means the walker is unknown or already decided.
func (q *Queries) UpdateWalkerStatus(ctx context.Context, dbtx db.DBTX, arg UpdateWalkerStatusParams) (int64, error) {
	tag, err := dbtx.Exec(ctx, updateWalkerStatus, arg.ID, arg.WalkerStatus)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (UserRow, error) {
	var u UserRow
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.FullName,
		&u.Phone,
		&u.Cedula,
		&u.WalkerStatus,
		&u.IsActive,
		&u.LastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}
