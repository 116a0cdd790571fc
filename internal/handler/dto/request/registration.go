package request

import (
	"paseos-api/internal/domain/cedula"
	"paseos-api/internal/domain/user"
)

// RegistrationRequest is shared by the owner and walker sign-up flows.
type RegistrationRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required,min=3,max=100"`
	Phone    string `json:"phone" binding:"required"`
	Cedula   string `json:"cedula" binding:"required"`
}

// ToDomain validates every field; a bad cédula surfaces as cedula.ErrInvalid.
func (r RegistrationRequest) ToDomain() (user.Profile, user.Password, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Profile{}, user.Password{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Profile{}, user.Password{}, err
	}
	fullName, err := user.NewFullName(r.FullName)
	if err != nil {
		return user.Profile{}, user.Password{}, err
	}
	phone, err := user.NewPhone(r.Phone)
	if err != nil {
		return user.Profile{}, user.Password{}, err
	}
	number, err := cedula.Parse(r.Cedula)
	if err != nil {
		return user.Profile{}, user.Password{}, err
	}

	profile := user.Profile{
		Email:    email,
		FullName: fullName,
		Phone:    phone,
		Cedula:   number,
	}
	return profile, password, nil
}
