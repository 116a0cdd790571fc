package readstore

import (
	"context"

	"github.com/google/uuid"

	"paseos-api/internal/domain/reservation"
	"paseos-api/internal/infra"
	"paseos-api/internal/infra/db"
	"paseos-api/internal/infra/pgsql"
	"paseos-api/internal/pkg/pgconv"
	"paseos-api/internal/pkg/ptr"
	"paseos-api/internal/usecase/queries"
)

type ReservationViewQueries interface {
	ListWalksByOwner(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID) ([]pgsql.WalkRow, error)
	ListWalksByWalker(ctx context.Context, dbtx db.DBTX, walkerID uuid.UUID) ([]pgsql.WalkRow, error)
	ListWalksByGroup(ctx context.Context, dbtx db.DBTX, groupID string) ([]pgsql.WalkRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      db.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]reservation.Record, error) {
	rows, err := r.queries.ListWalksByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list walks by owner", err)
	}
	return toRecords(rows), nil
}

func (r *ReservationReadStore) ListByWalker(ctx context.Context, walkerID uuid.UUID) ([]reservation.Record, error) {
	rows, err := r.queries.ListWalksByWalker(ctx, r.db, walkerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list walks by walker", err)
	}
	return toRecords(rows), nil
}

func (r *ReservationReadStore) FindGroup(ctx context.Context, groupID string) (*queries.GroupSnapshot, error) {
	rows, err := r.queries.ListWalksByGroup(ctx, r.db, groupID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find walk group", err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr("walk group not found", nil, infra.KindNotFound)
	}

	ownerID, walkerID := rows[0].OwnerID, rows[0].WalkerID
	for _, row := range rows[1:] {
		if row.OwnerID != ownerID || row.WalkerID != walkerID {
			return nil, infra.WrapRepoErr("walk group "+groupID+" spans several owners or walkers", nil, infra.KindInconsistent)
		}
	}

	return &queries.GroupSnapshot{
		OwnerID:  ownerID,
		WalkerID: walkerID,
		Records:  toRecords(rows),
	}, nil
}

func toRecords(rows []pgsql.WalkRow) []reservation.Record {
	records := make([]reservation.Record, len(rows))
	for i, row := range rows {
		records[i] = toRecord(row)
	}
	return records
}

func toRecord(row pgsql.WalkRow) reservation.Record {
	return reservation.Record{
		ID:              row.ID.String(),
		OwnerName:       row.OwnerName,
		WalkerName:      row.WalkerName,
		WalkerPhotoURL:  pgconv.StringFromPgtype(row.WalkerPhotoURL),
		PetName:         row.PetName,
		Date:            ptr.DateFromPgtype(row.WalkDate),
		StartTime:       pgconv.ClockFromPgtype(row.StartTime),
		Status:          reservation.Status(row.Status),
		Cost:            reservation.NewMoney(row.CostCents),
		DurationMinutes: int(row.DurationMinutes),
		Kind:            reservation.Kind(row.Kind),
		GroupID:         pgconv.StringPtrFromPgtype(row.GroupID),
		IsGroupMember:   ptr.BoolFromPgtype(row.IsGroupMember),
	}
}
