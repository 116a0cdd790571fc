package request

import "paseos-api/internal/usecase/queries"

type ListReservationsRequest struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (r ListReservationsRequest) ToPage() queries.Page {
	return queries.Page{After: r.After, Limit: r.Limit}
}
