package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"paseos-api/internal/infra/db"
)

const walkSelect = `SELECT
	w.id, w.owner_id, w.walker_id,
	o.full_name, wk.full_name, wk.photo_url, p.name,
	w.walk_date, w.start_time, w.status, w.cost_cents, w.duration_minutes,
	w.kind, w.group_id, w.is_group_member
FROM walks w
JOIN users o ON o.id = w.owner_id
JOIN users wk ON wk.id = w.walker_id
JOIN pets p ON p.id = w.pet_id`

const listWalksByOwner = walkSelect + `
WHERE w.owner_id = $1
ORDER BY w.walk_date NULLS LAST, w.start_time NULLS LAST, w.id`

const listWalksByWalker = walkSelect + `
WHERE w.walker_id = $1
ORDER BY w.walk_date NULLS LAST, w.start_time NULLS LAST, w.id`

const listWalksByGroup = walkSelect + `
WHERE w.group_id = $1
ORDER BY w.walk_date NULLS LAST, w.start_time NULLS LAST, w.id`

func (q *Queries) ListWalksByOwner(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID) ([]WalkRow, error) {
	return queryWalks(ctx, dbtx, listWalksByOwner, ownerID)
}

func (q *Queries) ListWalksByWalker(ctx context.Context, dbtx db.DBTX, walkerID uuid.UUID) ([]WalkRow, error) {
	return queryWalks(ctx, dbtx, listWalksByWalker, walkerID)
}

func (q *Queries) ListWalksByGroup(ctx context.Context, dbtx db.DBTX, groupID string) ([]WalkRow, error) {
	return queryWalks(ctx, dbtx, listWalksByGroup, groupID)
}

func queryWalks(ctx context.Context, dbtx db.DBTX, sql string, arg any) ([]WalkRow, error) {
	rows, err := dbtx.Query(ctx, sql, arg)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (WalkRow, error) {
		var w WalkRow
		err := row.Scan(
			&w.ID,
			&w.OwnerID,
			&w.WalkerID,
			&w.OwnerName,
			&w.WalkerName,
			&w.WalkerPhotoURL,
			&w.PetName,
			&w.WalkDate,
			&w.StartTime,
			&w.Status,
			&w.CostCents,
			&w.DurationMinutes,
			&w.Kind,
			&w.GroupID,
			&w.IsGroupMember,
		)
		return w, err
	})
}
