package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"paseos-api/internal/domain/reservation"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/usecase/queries"
)

// ReservationReadStore caches owner and walker listings for a short TTL. Group lookups
// go straight to the base store because they drive access checks.
type ReservationReadStore struct {
	base   queries.ReservationReadStore
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewReservationReadStore wraps base with a Redis cache, or returns base unchanged when
// no client is available.
func NewReservationReadStore(base queries.ReservationReadStore, client *redis.Client, cfg config.RedisConfig) queries.ReservationReadStore {
	if client == nil || cfg.ListingTTL <= 0 {
		return base
	}
	return &ReservationReadStore{
		base:   base,
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.ListingTTL,
	}
}

func (s *ReservationReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]reservation.Record, error) {
	return s.cached(ctx, key(s.prefix, "walks", "owner", ownerID.String()), func() ([]reservation.Record, error) {
		return s.base.ListByOwner(ctx, ownerID)
	})
}

func (s *ReservationReadStore) ListByWalker(ctx context.Context, walkerID uuid.UUID) ([]reservation.Record, error) {
	return s.cached(ctx, key(s.prefix, "walks", "walker", walkerID.String()), func() ([]reservation.Record, error) {
		return s.base.ListByWalker(ctx, walkerID)
	})
}

func (s *ReservationReadStore) FindGroup(ctx context.Context, groupID string) (*queries.GroupSnapshot, error) {
	return s.base.FindGroup(ctx, groupID)
}

func (s *ReservationReadStore) cached(ctx context.Context, k string, load func() ([]reservation.Record, error)) ([]reservation.Record, error) {
	raw, err := s.client.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		var entries []cachedRecord
		if jsonErr := json.Unmarshal(raw, &entries); jsonErr == nil {
			return fromCached(entries), nil
		}
		slog.Warn("discarding unreadable listing cache entry", "key", k)
	case !errors.Is(err, redis.Nil):
		slog.Warn("listing cache read failed", "key", k, "error", err.Error())
	}

	records, err := load()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(toCached(records))
	if err == nil {
		if setErr := s.client.Set(ctx, k, payload, s.ttl).Err(); setErr != nil {
			slog.Warn("listing cache write failed", "key", k, "error", setErr.Error())
		}
	}
	return records, nil
}

type cachedRecord struct {
	ID              string     `json:"id"`
	OwnerName       string     `json:"owner_name"`
	WalkerName      string     `json:"walker_name"`
	WalkerPhotoURL  string     `json:"walker_photo_url,omitempty"`
	PetName         string     `json:"pet_name"`
	Date            *time.Time `json:"date,omitempty"`
	StartTime       string     `json:"start_time,omitempty"`
	Status          string     `json:"status"`
	CostCents       int64      `json:"cost_cents"`
	DurationMinutes int        `json:"duration_minutes"`
	Kind            string     `json:"kind"`
	GroupID         *string    `json:"group_id,omitempty"`
	IsGroupMember   *bool      `json:"is_group_member,omitempty"`
}

func toCached(records []reservation.Record) []cachedRecord {
	out := make([]cachedRecord, len(records))
	for i, r := range records {
		out[i] = cachedRecord{
			ID:              r.ID,
			OwnerName:       r.OwnerName,
			WalkerName:      r.WalkerName,
			WalkerPhotoURL:  r.WalkerPhotoURL,
			PetName:         r.PetName,
			Date:            r.Date,
			StartTime:       r.StartTime,
			Status:          r.Status.String(),
			CostCents:       r.Cost.Cents(),
			DurationMinutes: r.DurationMinutes,
			Kind:            r.Kind.String(),
			GroupID:         r.GroupID,
			IsGroupMember:   r.IsGroupMember,
		}
	}
	return out
}

func fromCached(entries []cachedRecord) []reservation.Record {
	out := make([]reservation.Record, len(entries))
	for i, e := range entries {
		out[i] = reservation.Record{
			ID:              e.ID,
			OwnerName:       e.OwnerName,
			WalkerName:      e.WalkerName,
			WalkerPhotoURL:  e.WalkerPhotoURL,
			PetName:         e.PetName,
			Date:            e.Date,
			StartTime:       e.StartTime,
			Status:          reservation.Status(e.Status),
			Cost:            reservation.NewMoney(e.CostCents),
			DurationMinutes: e.DurationMinutes,
			Kind:            reservation.Kind(e.Kind),
			GroupID:         e.GroupID,
			IsGroupMember:   e.IsGroupMember,
		}
	}
	return out
}
