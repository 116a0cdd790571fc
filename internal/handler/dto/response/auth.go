package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"paseos-api/internal/usecase/queries"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone"`
	WalkerStatus *string   `json:"walkerStatus,omitempty"`
	IsActive     bool      `json:"isActive"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

func FromUserView(v *queries.AuthorizedUserView) (*UserResponse, error) {
	var res UserResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
