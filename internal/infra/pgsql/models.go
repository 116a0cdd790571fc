package pgsql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	FullName     string
	Phone        string
	Cedula       string
	WalkerStatus pgtype.Text
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	FullName     string
	Phone        string
	Cedula       string
	WalkerStatus pgtype.Text
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type UpdateWalkerStatusParams struct {
	ID           uuid.UUID
	WalkerStatus string
}

// WalkRow is a walk joined with its owner, walker and pet names.
type WalkRow struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	WalkerID        uuid.UUID
	OwnerName       string
	WalkerName      string
	WalkerPhotoURL  pgtype.Text
	PetName         string
	WalkDate        pgtype.Date
	StartTime       pgtype.Time
	Status          string
	CostCents       int64
	DurationMinutes int32
	Kind            string
	GroupID         pgtype.Text
	IsGroupMember   pgtype.Bool
}

type CreateQuizResultParams struct {
	ID             uuid.UUID
	WalkerID       uuid.UUID
	Passed         bool
	TotalScore     int32
	CriticalScore  int32
	CategoryScores []byte
	Answers        []byte
	CreatedAt      pgtype.Timestamptz
}
