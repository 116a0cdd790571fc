package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/usecase/commands"
)

type memoryEntry struct {
	state     commands.QuizSessionState
	expiresAt time.Time
}

// MemoryQuizSessionStore is the single-instance fallback for quiz sessions. Expired
// entries are dropped when read and swept whenever a new session is saved, so
// abandoned sessions do not accumulate.
type MemoryQuizSessionStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries map[uuid.UUID]memoryEntry
}

func NewMemoryQuizSessionStore(clk clock.Clock) *MemoryQuizSessionStore {
	return &MemoryQuizSessionStore{
		clock:   clk,
		entries: make(map[uuid.UUID]memoryEntry),
	}
}

func (s *MemoryQuizSessionStore) Save(_ context.Context, state commands.QuizSessionState, ttl time.Duration) error {
	state.Answers = slices.Clone(state.Answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	s.sweep(now)
	s.entries[state.ID] = memoryEntry{state: state, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryQuizSessionStore) Replace(_ context.Context, state commands.QuizSessionState, ttl time.Duration) error {
	state.Answers = slices.Clone(state.Answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	current, ok := s.entries[state.ID]
	if !ok || !now.Before(current.expiresAt) {
		delete(s.entries, state.ID)
		return commands.ErrQuizSessionNotFound
	}
	if current.state.Version != state.Version-1 {
		return commands.ErrQuizSessionConflict
	}
	s.entries[state.ID] = memoryEntry{state: state, expiresAt: now.Add(ttl)}
	return nil
}

// sweep must be called with mu held.
func (s *MemoryQuizSessionStore) sweep(now time.Time) {
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

func (s *MemoryQuizSessionStore) Load(_ context.Context, id uuid.UUID) (*commands.QuizSessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, commands.ErrQuizSessionNotFound
	}
	if !s.clock.Now().Before(entry.expiresAt) {
		delete(s.entries, id)
		return nil, commands.ErrQuizSessionNotFound
	}

	state := entry.state
	state.Answers = slices.Clone(entry.state.Answers)
	return &state, nil
}

func (s *MemoryQuizSessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
