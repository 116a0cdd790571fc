package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"paseos-api/internal/domain/auth"
	"paseos-api/internal/domain/user"
	reqdto "paseos-api/internal/handler/dto/request"
	"paseos-api/internal/infra"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/pkg/jwt"
	"paseos-api/internal/pkg/password"
	"paseos-api/internal/usecase/queries"
	"paseos-api/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	hasher     *password.Hasher
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, hasher *password.Hasher) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		hasher:     hasher,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	account, err := a.authenticate(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tokenPair, err := a.issueTokens(account.ID, role)
	if err != nil {
		return nil, err
	}

	a.recordLogin(ctx, account.ID)
	slog.Info("user logged in", "user_id", account.ID, "role", role)

	return &LoginResult{
		UserID:    account.ID,
		TokenPair: tokenPair,
	}, nil
}

// RefreshToken rotates the pair. Tokens are reissued with the role stored for the
// account, and a refresh token minted for a different role is refused.
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	account, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !account.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if claims.Role != role.String() {
		return nil, errs.Wrapf(ErrTokenValidation, "token role %q, account role %q", claims.Role, role)
	}

	return a.issueTokens(account.ID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) authenticate(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	account, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// unknown emails look like a wrong password
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !account.IsActive {
		return nil, ErrUserInactive
	}

	if err := a.hasher.Compare(hashedPassword, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// recordLogin stamps last_login. A failure leaves the timestamp stale but the login stands.
func (a *authCommandsImpl) recordLogin(ctx context.Context, userID uuid.UUID) {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, userID)
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", userID, "error", err.Error())
	}
}
