package shared

import (
	"time"

	"paseos-api/internal/domain/quiz"

	"github.com/google/uuid"
)

// QuizResultRecord is the persisted verdict of one finished admission quiz.
type QuizResultRecord struct {
	ID        uuid.UUID
	WalkerID  uuid.UUID
	Result    quiz.Result
	Answers   []int
	CreatedAt time.Time
}
