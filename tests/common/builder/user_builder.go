//go:build unit || e2e

package builder

import (
	"paseos-api/internal/domain/cedula"
	"paseos-api/internal/domain/user"
	"paseos-api/internal/infra/pgsql"
	"paseos-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	FullName     string
	Phone        string
	Cedula       string
	WalkerStatus *string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "owner",
		FullName:     "María Torres",
		Phone:        "0991234567",
		Cedula:       "1710034065",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildProfile() (user.Profile, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return user.Profile{}, err
	}
	fullName, err := user.NewFullName(u.FullName)
	if err != nil {
		return user.Profile{}, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return user.Profile{}, err
	}
	number, err := cedula.Parse(u.Cedula)
	if err != nil {
		return user.Profile{}, err
	}

	return user.Profile{Email: email, FullName: fullName, Phone: phone, Cedula: number}, nil
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	profile, err := u.BuildProfile()
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(profile, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:           uuid.New(),
		Email:        u.Email,
		Role:         u.Role,
		FullName:     u.FullName,
		Phone:        u.Phone,
		WalkerStatus: u.WalkerStatus,
		IsActive:     u.IsActive,
	}
}

func (u *UserBuilder) BuildRow() pgsql.UserRow {
	row := pgsql.UserRow{
		ID:           uuid.New(),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		FullName:     u.FullName,
		Phone:        u.Phone,
		Cedula:       u.Cedula,
		IsActive:     u.IsActive,
	}
	if u.WalkerStatus != nil {
		row.WalkerStatus = pgtype.Text{String: *u.WalkerStatus, Valid: true}
	}
	return row
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithFullName(name string) *UserBuilder {
	u.FullName = name
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithCedula(number string) *UserBuilder {
	u.Cedula = number
	return u
}

// AsWalker switches the builder to a walker whose application is in the given status.
func (u *UserBuilder) AsWalker(status user.WalkerStatus) *UserBuilder {
	s := status.String()
	u.Role = user.RoleWalker.String()
	u.WalkerStatus = &s
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
