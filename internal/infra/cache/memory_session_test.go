//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState() commands.QuizSessionState {
	return commands.QuizSessionState{
		ID:        uuid.New(),
		WalkerID:  uuid.New(),
		Answers:   []int{1, 2},
		StartedAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestMemoryQuizSessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save then load", func(t *testing.T) {
		store := NewMemoryQuizSessionStore(clock.NewFixedClock(time.Now()))
		state := newState()

		require.NoError(t, store.Save(ctx, state, time.Hour))
		got, err := store.Load(ctx, state.ID)

		require.NoError(t, err)
		assert.Equal(t, state, *got)
	})

	t.Run("unknown session", func(t *testing.T) {
		store := NewMemoryQuizSessionStore(clock.NewFixedClock(time.Now()))

		_, err := store.Load(ctx, uuid.New())

		assert.ErrorIs(t, err, commands.ErrQuizSessionNotFound)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		clk := clock.NewFixedClock(time.Now())
		store := NewMemoryQuizSessionStore(clk)
		state := newState()
		require.NoError(t, store.Save(ctx, state, time.Minute))

		clk.Advance(59 * time.Second)
		_, err := store.Load(ctx, state.ID)
		require.NoError(t, err)

		clk.Advance(time.Second)
		_, err = store.Load(ctx, state.ID)
		assert.ErrorIs(t, err, commands.ErrQuizSessionNotFound)
	})

	t.Run("stored answers are isolated from callers", func(t *testing.T) {
		store := NewMemoryQuizSessionStore(clock.NewFixedClock(time.Now()))
		state := newState()
		require.NoError(t, store.Save(ctx, state, time.Hour))

		state.Answers[0] = 3
		got, err := store.Load(ctx, state.ID)
		require.NoError(t, err)
		got.Answers[1] = 0

		again, err := store.Load(ctx, state.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, again.Answers)
	})

	t.Run("delete", func(t *testing.T) {
		store := NewMemoryQuizSessionStore(clock.NewFixedClock(time.Now()))
		state := newState()
		require.NoError(t, store.Save(ctx, state, time.Hour))

		require.NoError(t, store.Delete(ctx, state.ID))
		_, err := store.Load(ctx, state.ID)

		assert.ErrorIs(t, err, commands.ErrQuizSessionNotFound)
	})
}

func TestMemoryQuizSessionStore_SweepsAbandonedSessions(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFixedClock(time.Now())
	store := NewMemoryQuizSessionStore(clk)

	for range 1000 {
		require.NoError(t, store.Save(ctx, newState(), time.Minute))
	}
	live := newState()
	require.NoError(t, store.Save(ctx, live, 48*time.Hour))
	require.Len(t, store.entries, 1001)

	clk.Advance(24 * time.Hour)
	require.NoError(t, store.Save(ctx, newState(), time.Minute))

	assert.Len(t, store.entries, 2)
	_, err := store.Load(ctx, live.ID)
	assert.NoError(t, err)
}

func TestMemoryQuizSessionStore_Replace(t *testing.T) {
	ctx := context.Background()

	saved := func(t *testing.T) (*MemoryQuizSessionStore, *clock.FixedClock, commands.QuizSessionState) {
		t.Helper()
		clk := clock.NewFixedClock(time.Now())
		store := NewMemoryQuizSessionStore(clk)
		state := newState()
		state.Version = len(state.Answers)
		require.NoError(t, store.Save(ctx, state, time.Hour))
		return store, clk, state
	}

	t.Run("next version is stored", func(t *testing.T) {
		store, _, state := saved(t)
		state.Answers = append(state.Answers, 0)
		state.Version++

		require.NoError(t, store.Replace(ctx, state, time.Hour))

		got, err := store.Load(ctx, state.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 0}, got.Answers)
		assert.Equal(t, 3, got.Version)
	})

	t.Run("second writer from the same version loses", func(t *testing.T) {
		store, _, state := saved(t)
		first, second := state, state
		first.Answers, first.Version = []int{1, 2, 0}, state.Version+1
		second.Answers, second.Version = []int{1, 2, 3}, state.Version+1

		require.NoError(t, store.Replace(ctx, first, time.Hour))
		err := store.Replace(ctx, second, time.Hour)

		assert.ErrorIs(t, err, commands.ErrQuizSessionConflict)
		got, loadErr := store.Load(ctx, state.ID)
		require.NoError(t, loadErr)
		assert.Equal(t, []int{1, 2, 0}, got.Answers)
	})

	t.Run("expired session cannot be replaced", func(t *testing.T) {
		store, clk, state := saved(t)
		clk.Advance(time.Hour)
		state.Version++

		err := store.Replace(ctx, state, time.Hour)

		assert.ErrorIs(t, err, commands.ErrQuizSessionNotFound)
		assert.Empty(t, store.entries)
	})

	t.Run("unknown session", func(t *testing.T) {
		store := NewMemoryQuizSessionStore(clock.NewFixedClock(time.Now()))
		state := newState()
		state.Version = 1

		assert.ErrorIs(t, store.Replace(ctx, state, time.Hour), commands.ErrQuizSessionNotFound)
	})
}

func TestNewQuizSessionStoreFallsBackToMemory(t *testing.T) {
	store := NewQuizSessionStore(nil, config.NewTestConfig().Redis, clock.NewRealClock())

	assert.IsType(t, &MemoryQuizSessionStore{}, store)
}
