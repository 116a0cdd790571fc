package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QuizEvaluatedEvent is published once a walker applicant finishes the admission quiz.
type QuizEvaluatedEvent struct {
	ResultID       uuid.UUID      `json:"result_id"`
	WalkerID       uuid.UUID      `json:"walker_id"`
	Passed         bool           `json:"passed"`
	TotalScore     int            `json:"total_score"`
	CriticalScore  int            `json:"critical_score"`
	CategoryScores map[string]int `json:"category_scores"`
	WalkerStatus   string         `json:"walker_status"`
	EvaluatedAt    time.Time      `json:"evaluated_at"`
}

// EventPublisher delivers domain events to downstream consumers. Failures are reported
// to the caller, which decides whether they are fatal.
type EventPublisher interface {
	PublishQuizEvaluated(ctx context.Context, event QuizEvaluatedEvent) error
}
