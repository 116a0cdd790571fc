package auth

import (
	"errors"

	"paseos-api/internal/domain/user"
)

var ErrEmptyPassword = errors.New("password is required")

// Credentials is what a user presents at login. Only the email is normalized; the
// password is compared against the stored hash as typed, without the sign-up strength rules.
type Credentials struct {
	email    user.Email
	password string
}

func NewCredentials(emailStr, password string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
