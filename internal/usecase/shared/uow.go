package shared

import (
	"context"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	QuizResults() QuizResultRepository
	DB() db.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
	UpdateWalkerStatus(ctx context.Context, walkerID uuid.UUID, status user.WalkerStatus) error
}

type QuizResultRepository interface {
	Create(ctx context.Context, result QuizResultRecord) error
}
