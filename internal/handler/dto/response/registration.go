package response

import (
	"github.com/google/uuid"

	"paseos-api/internal/usecase/commands"
)

type RegistrationResponse struct {
	ID           uuid.UUID `json:"id"`
	Role         string    `json:"role"`
	WalkerStatus *string   `json:"walkerStatus,omitempty"`
}

func FromRegistrationResult(r *commands.RegistrationResult) *RegistrationResponse {
	res := &RegistrationResponse{
		ID:   r.UserID,
		Role: r.Role.String(),
	}
	if r.WalkerStatus != nil {
		s := r.WalkerStatus.String()
		res.WalkerStatus = &s
	}
	return res
}

type CedulaValidationResponse struct {
	Valid bool `json:"valid"`
}
