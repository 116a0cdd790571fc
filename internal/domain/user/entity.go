package user

import (
	"time"

	"paseos-api/internal/domain/cedula"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	fullName     FullName
	phone        Phone
	cedula       cedula.Number
	walkerStatus *WalkerStatus
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

type Profile struct {
	Email    Email
	FullName FullName
	Phone    Phone
	Cedula   cedula.Number
}

// NewUser creates an active account. Walkers start with their application waiting
// for the admission quiz.
func NewUser(p Profile, passwordHash string, role Role) *User {
	var walkerStatus *WalkerStatus
	if role == RoleWalker {
		status := WalkerStatusQuizPending
		walkerStatus = &status
	}
	return &User{
		id:           uuid.New(),
		email:        p.Email,
		passwordHash: passwordHash,
		role:         role,
		fullName:     p.FullName,
		phone:        p.Phone,
		cedula:       p.Cedula,
		walkerStatus: walkerStatus,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID               { return u.id }
func (u *User) Email() Email                { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Role() Role                  { return u.role }
func (u *User) FullName() FullName          { return u.fullName }
func (u *User) Phone() Phone                { return u.phone }
func (u *User) Cedula() cedula.Number       { return u.cedula }
func (u *User) WalkerStatus() *WalkerStatus { return u.walkerStatus }
func (u *User) LastLogin() *time.Time       { return u.lastLogin }
func (u *User) IsActive() bool              { return u.isActive }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }
