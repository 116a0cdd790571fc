//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/infra"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/pkg/jwt"
	"paseos-api/internal/pkg/password"
	"paseos-api/internal/usecase/commands"
	"paseos-api/internal/usecase/shared"
	"paseos-api/tests/common/builder"
	queriesmock "paseos-api/tests/mock/queries"
	sharedmock "paseos-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	repo       *sharedmock.MockUserRepository
	readStore  *queriesmock.MockUserReadStore
	jwtService *jwt.Service
	hasher     *password.Hasher
	cmds       commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.repo = sharedmock.NewMockUserRepository(s.ctrl)
	s.readStore = queriesmock.NewMockUserReadStore(s.ctrl)
	s.jwtService = jwt.NewService("test-secret", 15*time.Minute, time.Hour)
	s.hasher = password.NewHasherWithCost(bcrypt.MinCost)
	s.cmds = commands.NewAuthCommands(s.uow, s.readStore, s.jwtService, s.hasher)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Users().Return(s.repo).AnyTimes()
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) hashed(pw string) string {
	h, err := s.hasher.Hash(pw)
	s.Require().NoError(err)
	return h
}

func (s *AuthCommandsTestSuite) TestLogin() {
	req := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: issues tokens and records the login", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(view, s.hashed(req.Password), nil).Times(1)
		s.repo.EXPECT().UpdateLastLogin(gomock.Any(), view.ID).Return(nil).Times(1)

		result, err := s.cmds.Login(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(view.ID, result.UserID)
		claims, err := s.jwtService.ValidateToken(result.TokenPair.AccessToken)
		s.Require().NoError(err)
		s.Equal(view.ID, claims.UserID)
		s.Equal(jwt.TokenTypeAccess, claims.TokenType)
	})

	s.Run("success: a failed last_login update does not block the login", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(view, s.hashed(req.Password), nil).Times(1)
		s.repo.EXPECT().UpdateLastLogin(gomock.Any(), view.ID).Return(errors.New("deadlock")).Times(1)

		_, err := s.cmds.Login(context.Background(), req)

		s.NoError(err)
	})

	s.Run("error: wrong password", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(view, s.hashed("another-password"), nil).Times(1)

		_, err := s.cmds.Login(context.Background(), req)

		s.Truef(errs.Is(err, commands.ErrInvalidCredentials), "got %v", err)
	})

	s.Run("error: unknown email looks like a wrong password", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.cmds.Login(context.Background(), req)

		s.Truef(errs.Is(err, commands.ErrInvalidCredentials), "got %v", err)
	})

	s.Run("error: database failure is not reported as bad credentials", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(nil, "", infra.WrapRepoErr("failed to get user", errors.New("connection reset"))).Times(1)

		_, err := s.cmds.Login(context.Background(), req)

		s.Truef(errs.Is(err, commands.ErrDatabaseOperationFailed), "got %v", err)
		s.False(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: inactive account", func() {
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.readStore.EXPECT().FindByEmail(gomock.Any(), req.Email).Return(view, s.hashed(req.Password), nil).Times(1)

		_, err := s.cmds.Login(context.Background(), req)

		s.Truef(errs.Is(err, commands.ErrUserInactive), "got %v", err)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	s.Run("success: rotates the pair for an active user", func() {
		view := builder.NewUserBuilder().AsWalker(user.WalkerStatusApproved).BuildReadModel()
		refresh, err := s.jwtService.GenerateRefreshToken(view.ID, user.RoleWalker)
		s.Require().NoError(err)
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		pair, err := s.cmds.RefreshToken(context.Background(), refresh)

		s.Require().NoError(err)
		claims, err := s.jwtService.ValidateToken(pair.AccessToken)
		s.Require().NoError(err)
		s.Equal(string(user.RoleWalker), claims.Role)
	})

	s.Run("error: access token cannot be used to refresh", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		access, err := s.jwtService.GenerateAccessToken(view.ID, user.RoleOwner)
		s.Require().NoError(err)

		_, err = s.cmds.RefreshToken(context.Background(), access)

		s.Truef(errs.Is(err, commands.ErrTokenValidation), "got %v", err)
	})

	s.Run("error: garbage token", func() {
		_, err := s.cmds.RefreshToken(context.Background(), "not-a-jwt")

		s.Truef(errs.Is(err, commands.ErrTokenValidation), "got %v", err)
	})

	s.Run("error: token role no longer matches the account", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		refresh, err := s.jwtService.GenerateRefreshToken(view.ID, user.RoleAdmin)
		s.Require().NoError(err)
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		_, err = s.cmds.RefreshToken(context.Background(), refresh)

		s.Truef(errs.Is(err, commands.ErrTokenValidation), "got %v", err)
	})

	s.Run("error: account deleted since the token was issued", func() {
		id := uuid.New()
		refresh, err := s.jwtService.GenerateRefreshToken(id, user.RoleOwner)
		s.Require().NoError(err)
		s.readStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)).Times(1)

		_, err = s.cmds.RefreshToken(context.Background(), refresh)

		s.Truef(errs.Is(err, commands.ErrUserNotFound), "got %v", err)
	})

	s.Run("error: user deactivated since the token was issued", func() {
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		refresh, err := s.jwtService.GenerateRefreshToken(view.ID, user.RoleOwner)
		s.Require().NoError(err)
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		_, err = s.cmds.RefreshToken(context.Background(), refresh)

		s.Truef(errs.Is(err, commands.ErrUserInactive), "got %v", err)
	})
}
