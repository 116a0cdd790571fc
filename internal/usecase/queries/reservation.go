package queries

import (
	"context"

	"github.com/google/uuid"

	"paseos-api/internal/domain/reservation"
	"paseos-api/internal/domain/user"
	"paseos-api/internal/infra"
	"paseos-api/internal/pkg/errs"
)

var (
	ErrReservationGroupNotFound = errs.New("reservation group not found")
	ErrReservationAccessDenied  = errs.New("reservation access denied")
	ErrReservationGroupCorrupt  = errs.New("reservation group mixes owners or walkers")
	ErrInvalidCursor            = errs.New("invalid cursor")
)

// Actor is the authenticated user a query runs for.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

// GroupSnapshot holds every record carrying a group id together with its participants.
type GroupSnapshot struct {
	OwnerID  uuid.UUID
	WalkerID uuid.UUID
	Records  []reservation.Record
}

type ReservationReadStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]reservation.Record, error)
	ListByWalker(ctx context.Context, walkerID uuid.UUID) ([]reservation.Record, error)
	FindGroup(ctx context.Context, groupID string) (*GroupSnapshot, error)
}

type ReservationQueries interface {
	// List picks the owner or walker listing from the actor's role.
	List(ctx context.Context, actor Actor, page Page) (*ReservationItemPage, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, page Page) (*ReservationItemPage, error)
	ListForWalker(ctx context.Context, walkerID uuid.UUID, page Page) (*ReservationItemPage, error)
	GetGroup(ctx context.Context, actor Actor, groupID string) (*ReservationItemView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) List(ctx context.Context, actor Actor, page Page) (*ReservationItemPage, error) {
	switch actor.Role {
	case user.RoleOwner:
		return q.ListForOwner(ctx, actor.UserID, page)
	case user.RoleWalker:
		return q.ListForWalker(ctx, actor.UserID, page)
	default:
		return nil, ErrReservationAccessDenied
	}
}

func (q *reservationQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, page Page) (*ReservationItemPage, error) {
	records, err := q.readStore.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return paginate(reservation.Group(records), page)
}

func (q *reservationQueriesImpl) ListForWalker(ctx context.Context, walkerID uuid.UUID, page Page) (*ReservationItemPage, error) {
	records, err := q.readStore.ListByWalker(ctx, walkerID)
	if err != nil {
		return nil, err
	}
	return paginate(reservation.Group(records), page)
}

func (q *reservationQueriesImpl) GetGroup(ctx context.Context, actor Actor, groupID string) (*ReservationItemView, error) {
	snapshot, err := q.readStore.FindGroup(ctx, groupID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationGroupNotFound
		}
		if infra.IsKind(err, infra.KindInconsistent) {
			return nil, errs.Mark(err, ErrReservationGroupCorrupt)
		}
		return nil, err
	}
	if snapshot == nil || len(snapshot.Records) == 0 {
		return nil, ErrReservationGroupNotFound
	}

	if !canView(actor, snapshot) {
		return nil, ErrReservationAccessDenied
	}

	for _, it := range reservation.Group(snapshot.Records) {
		if it.IsGrouped() && it.GroupID() == groupID {
			view := toItemView(it)
			return &view, nil
		}
	}
	// records carry the id but none is flagged as a group member
	return nil, ErrReservationGroupNotFound
}

func canView(actor Actor, snapshot *GroupSnapshot) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleOwner:
		return snapshot.OwnerID == actor.UserID
	case user.RoleWalker:
		return snapshot.WalkerID == actor.UserID
	default:
		return false
	}
}

func paginate(items []*reservation.Item, page Page) (*ReservationItemPage, error) {
	offset := 0
	if page.After != "" {
		o, err := DecodeOffsetCursor(page.After)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidCursor)
		}
		offset = o
	}
	limit := ValidateLimit(page.Limit)

	result := &ReservationItemPage{Items: []ReservationItemView{}}
	if offset >= len(items) {
		return result, nil
	}

	end := min(offset+limit, len(items))
	for _, it := range items[offset:end] {
		result.Items = append(result.Items, toItemView(it))
	}
	if end < len(items) {
		result.NextCursor = &Cursor{After: EncodeOffsetCursor(end)}
	}
	return result, nil
}

func toItemView(it *reservation.Item) ReservationItemView {
	primary := it.PrimaryRecord()

	view := ReservationItemView{
		ID:                   primary.ID,
		IsGrouped:            it.IsGrouped(),
		Kind:                 primary.Kind.String(),
		OwnerName:            primary.OwnerName,
		WalkerName:           primary.WalkerName,
		WalkerPhotoURL:       primary.WalkerPhotoURL,
		PetName:              primary.PetName,
		StartTime:            primary.StartTime,
		DateRange:            it.DateRangeLabel(),
		DayCount:             it.DayCount(),
		TotalCostCents:       it.TotalCost().Cents(),
		TotalCost:            it.TotalCost().String(),
		Status:               it.EffectiveStatus().String(),
		CompletedCount:       it.CompletedCount(),
		IsPartiallyCompleted: it.IsPartiallyCompleted(),
		IsFullyCompleted:     it.IsFullyCompleted(),
	}
	if it.IsGrouped() {
		groupID := it.GroupID()
		view.GroupID = &groupID
	}

	records := it.Records()
	view.Days = make([]ReservationDayView, 0, len(records))
	for _, r := range records {
		view.Days = append(view.Days, ReservationDayView{
			ID:              r.ID,
			Date:            r.FormattedDate(),
			StartTime:       r.StartTime,
			Status:          r.Status.String(),
			CostCents:       r.Cost.Cents(),
			DurationMinutes: r.DurationMinutes,
		})
	}
	return view
}
