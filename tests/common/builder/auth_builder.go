//go:build unit || e2e

package builder

import (
	reqdto "paseos-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

// RegistrationBuilder produces sign-up payloads that pass every field check.
type RegistrationBuilder struct {
	req reqdto.RegistrationRequest
}

func NewRegistrationBuilder() *RegistrationBuilder {
	return &RegistrationBuilder{req: reqdto.RegistrationRequest{
		Email:    "maria@example.com",
		Password: "password123",
		FullName: "María Torres",
		Phone:    "0991234567",
		Cedula:   "1710034065",
	}}
}

func (r *RegistrationBuilder) WithEmail(email string) *RegistrationBuilder {
	r.req.Email = email
	return r
}

func (r *RegistrationBuilder) WithCedula(cedula string) *RegistrationBuilder {
	r.req.Cedula = cedula
	return r
}

func (r *RegistrationBuilder) WithFullName(name string) *RegistrationBuilder {
	r.req.FullName = name
	return r
}

func (r *RegistrationBuilder) With(mutate func(*reqdto.RegistrationRequest)) *RegistrationBuilder {
	mutate(&r.req)
	return r
}

func (r *RegistrationBuilder) BuildDTO() reqdto.RegistrationRequest {
	return r.req
}
