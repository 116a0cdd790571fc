package commands

import (
	"context"
	"time"

	"paseos-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrQuizSessionNotFound = errs.New("quiz session not found")
	ErrQuizSessionConflict = errs.New("quiz session was changed by another request")
)

// QuizSessionState is the resumable part of an in-progress quiz: who is taking it and the
// answers submitted so far. The session itself is rebuilt by replaying the answers.
// Version grows by one with every stored answer.
type QuizSessionState struct {
	ID        uuid.UUID `json:"id"`
	WalkerID  uuid.UUID `json:"walker_id"`
	Answers   []int     `json:"answers"`
	Version   int       `json:"version"`
	StartedAt time.Time `json:"started_at"`
}

// QuizSessionStore keeps in-progress sessions between requests. Load returns
// ErrQuizSessionNotFound for unknown or expired sessions.
//
// Replace writes state only while the stored copy is still at state.Version-1 and
// returns ErrQuizSessionConflict otherwise.
type QuizSessionStore interface {
	Save(ctx context.Context, state QuizSessionState, ttl time.Duration) error
	Replace(ctx context.Context, state QuizSessionState, ttl time.Duration) error
	Load(ctx context.Context, id uuid.UUID) (*QuizSessionState, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
