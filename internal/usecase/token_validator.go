package usecase

import (
	"paseos-api/internal/domain/user"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrNotAnAccessToken = errs.New("not an access token")

// Principal is the caller identity carried by a verified access token.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

// TokenValidator turns a bearer or cookie token into the calling principal.
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken accepts only access tokens; refresh tokens are good for /auth/refresh alone.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return Principal{}, ErrNotAnAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, errs.Wrap(err, "access token role")
	}

	return Principal{UserID: claims.UserID, Role: role}, nil
}
