//go:build unit || e2e

package builder

import (
	"time"

	"paseos-api/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID              string
	OwnerName       string
	WalkerName      string
	WalkerPhotoURL  string
	PetName         string
	Date            *time.Time
	StartTime       string
	Status          reservation.Status
	CostCents       int64
	DurationMinutes int
	Kind            reservation.Kind
	GroupID         *string
	IsGroupMember   *bool
}

func NewReservationBuilder() *ReservationBuilder {
	date := Day(2025, time.January, 15)
	return &ReservationBuilder{
		ID:              uuid.NewString(),
		OwnerName:       "María Torres",
		WalkerName:      "Carlos Andrade",
		WalkerPhotoURL:  "https://cdn.example.com/walkers/carlos.jpg",
		PetName:         "Luna",
		Date:            &date,
		StartTime:       "08:30",
		Status:          reservation.StatusPending,
		CostCents:       1000,
		DurationMinutes: 60,
		Kind:            reservation.KindSingle,
	}
}

// Day returns midnight UTC for the given calendar date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithID(id string) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) OnDay(year int, month time.Month, day int) *ReservationBuilder {
	d := Day(year, month, day)
	b.Date = &d
	return b
}

func (b *ReservationBuilder) WithoutDate() *ReservationBuilder {
	b.Date = nil
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithCostCents(cents int64) *ReservationBuilder {
	b.CostCents = cents
	return b
}

// InGroup marks the record as a member of groupID.
func (b *ReservationBuilder) InGroup(groupID string) *ReservationBuilder {
	member := true
	b.GroupID = &groupID
	b.IsGroupMember = &member
	b.Kind = reservation.KindWeekly
	return b
}

func (b *ReservationBuilder) WithGroupFields(groupID *string, member *bool) *ReservationBuilder {
	b.GroupID = groupID
	b.IsGroupMember = member
	return b
}

func (b *ReservationBuilder) BuildDomain() reservation.Record {
	return reservation.Record{
		ID:              b.ID,
		OwnerName:       b.OwnerName,
		WalkerName:      b.WalkerName,
		WalkerPhotoURL:  b.WalkerPhotoURL,
		PetName:         b.PetName,
		Date:            b.Date,
		StartTime:       b.StartTime,
		Status:          b.Status,
		Cost:            reservation.NewMoney(b.CostCents),
		DurationMinutes: b.DurationMinutes,
		Kind:            b.Kind,
		GroupID:         b.GroupID,
		IsGroupMember:   b.IsGroupMember,
	}
}
