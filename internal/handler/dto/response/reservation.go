package response

import "paseos-api/internal/usecase/queries"

type ReservationDayResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	Status          string `json:"status"`
	CostCents       int64  `json:"costCents"`
	DurationMinutes int    `json:"durationMinutes"`
}

type ReservationItemResponse struct {
	ID                   string                   `json:"id"`
	GroupID              *string                  `json:"groupId,omitempty"`
	IsGrouped            bool                     `json:"isGrouped"`
	Kind                 string                   `json:"kind"`
	OwnerName            string                   `json:"ownerName"`
	WalkerName           string                   `json:"walkerName"`
	WalkerPhotoURL       string                   `json:"walkerPhotoUrl,omitempty"`
	PetName              string                   `json:"petName"`
	StartTime            string                   `json:"startTime"`
	DateRange            string                   `json:"dateRange"`
	DayCount             int                      `json:"dayCount"`
	TotalCostCents       int64                    `json:"totalCostCents"`
	TotalCost            string                   `json:"totalCost"`
	Status               string                   `json:"status"`
	CompletedCount       int                      `json:"completedCount"`
	IsPartiallyCompleted bool                     `json:"isPartiallyCompleted"`
	IsFullyCompleted     bool                     `json:"isFullyCompleted"`
	Days                 []ReservationDayResponse `json:"days"`
}

type ReservationListResponse struct {
	Items      []ReservationItemResponse `json:"items"`
	NextCursor *string                   `json:"nextCursor,omitempty"`
}

func FromReservationItemView(v *queries.ReservationItemView) *ReservationItemResponse {
	res := &ReservationItemResponse{
		ID:                   v.ID,
		GroupID:              v.GroupID,
		IsGrouped:            v.IsGrouped,
		Kind:                 v.Kind,
		OwnerName:            v.OwnerName,
		WalkerName:           v.WalkerName,
		WalkerPhotoURL:       v.WalkerPhotoURL,
		PetName:              v.PetName,
		StartTime:            v.StartTime,
		DateRange:            v.DateRange,
		DayCount:             v.DayCount,
		TotalCostCents:       v.TotalCostCents,
		TotalCost:            v.TotalCost,
		Status:               v.Status,
		CompletedCount:       v.CompletedCount,
		IsPartiallyCompleted: v.IsPartiallyCompleted,
		IsFullyCompleted:     v.IsFullyCompleted,
		Days:                 make([]ReservationDayResponse, len(v.Days)),
	}
	for i, d := range v.Days {
		res.Days[i] = ReservationDayResponse{
			ID:              d.ID,
			Date:            d.Date,
			StartTime:       d.StartTime,
			Status:          d.Status,
			CostCents:       d.CostCents,
			DurationMinutes: d.DurationMinutes,
		}
	}
	return res
}

func FromReservationItemPage(p *queries.ReservationItemPage) *ReservationListResponse {
	res := &ReservationListResponse{Items: make([]ReservationItemResponse, len(p.Items))}
	for i := range p.Items {
		res.Items[i] = *FromReservationItemView(&p.Items[i])
	}
	if p.NextCursor != nil {
		after := p.NextCursor.After
		res.NextCursor = &after
	}
	return res
}
