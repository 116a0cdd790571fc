package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/usecase/commands"
)

// NewQuizSessionStore keeps sessions in Redis when a client is available and in process
// memory otherwise.
func NewQuizSessionStore(client *redis.Client, cfg config.RedisConfig, clk clock.Clock) commands.QuizSessionStore {
	if client == nil {
		return NewMemoryQuizSessionStore(clk)
	}
	return &RedisQuizSessionStore{client: client, prefix: cfg.KeyPrefix}
}

type RedisQuizSessionStore struct {
	client *redis.Client
	prefix string
}

func (s *RedisQuizSessionStore) Save(ctx context.Context, state commands.QuizSessionState, ttl time.Duration) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return errs.Wrap(err, "marshal quiz session")
	}
	if err := s.client.Set(ctx, s.key(state.ID), payload, ttl).Err(); err != nil {
		return errs.Wrap(err, "store quiz session")
	}
	return nil
}

// Replace runs under WATCH so that a write by another request between the version
// check and the SET aborts the transaction.
func (s *RedisQuizSessionStore) Replace(ctx context.Context, state commands.QuizSessionState, ttl time.Duration) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return errs.Wrap(err, "marshal quiz session")
	}

	k := s.key(state.ID)
	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, k).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return commands.ErrQuizSessionNotFound
			}
			return errs.Wrap(err, "load quiz session")
		}
		var current commands.QuizSessionState
		if err := json.Unmarshal(raw, &current); err != nil {
			return errs.Wrap(err, "unmarshal quiz session")
		}
		if current.Version != state.Version-1 {
			return commands.ErrQuizSessionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, payload, ttl)
			return nil
		})
		return err
	}, k)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.TxFailedErr):
		return commands.ErrQuizSessionConflict
	case errs.Is(err, commands.ErrQuizSessionNotFound), errs.Is(err, commands.ErrQuizSessionConflict):
		return err
	default:
		return errs.Wrap(err, "replace quiz session")
	}
}

func (s *RedisQuizSessionStore) Load(ctx context.Context, id uuid.UUID) (*commands.QuizSessionState, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, commands.ErrQuizSessionNotFound
		}
		return nil, errs.Wrap(err, "load quiz session")
	}

	var state commands.QuizSessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, errs.Wrap(err, "unmarshal quiz session")
	}
	return &state, nil
}

func (s *RedisQuizSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errs.Wrap(err, "delete quiz session")
	}
	return nil
}

func (s *RedisQuizSessionStore) key(id uuid.UUID) string {
	return key(s.prefix, "quiz", "session", id.String())
}
