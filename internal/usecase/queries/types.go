package queries

import (
	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	WalkerStatus *string   `json:"walker_status,omitempty"`
	IsActive     bool      `json:"is_active"`
}

// ReservationDayView is one walk inside a listing item.
type ReservationDayView struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	Status          string `json:"status"`
	CostCents       int64  `json:"cost_cents"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ReservationItemView is a listing row: a single walk or a grouped booking with all its days.
type ReservationItemView struct {
	ID                   string               `json:"id"`
	GroupID              *string              `json:"group_id,omitempty"`
	IsGrouped            bool                 `json:"is_grouped"`
	Kind                 string               `json:"kind"`
	OwnerName            string               `json:"owner_name"`
	WalkerName           string               `json:"walker_name"`
	WalkerPhotoURL       string               `json:"walker_photo_url,omitempty"`
	PetName              string               `json:"pet_name"`
	StartTime            string               `json:"start_time"`
	DateRange            string               `json:"date_range"`
	DayCount             int                  `json:"day_count"`
	TotalCostCents       int64                `json:"total_cost_cents"`
	TotalCost            string               `json:"total_cost"`
	Status               string               `json:"status"`
	CompletedCount       int                  `json:"completed_count"`
	IsPartiallyCompleted bool                 `json:"is_partially_completed"`
	IsFullyCompleted     bool                 `json:"is_fully_completed"`
	Days                 []ReservationDayView `json:"days"`
}

type ReservationItemPage struct {
	Items      []ReservationItemView `json:"items"`
	NextCursor *Cursor               `json:"next_cursor,omitempty"`
}
