package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"paseos-api/internal/domain/cedula"
	"paseos-api/internal/domain/user"
	reqdto "paseos-api/internal/handler/dto/request"
	"paseos-api/internal/infra"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/pkg/password"
	"paseos-api/internal/usecase/shared"
)

var (
	ErrInvalidRegistration     = errs.New("invalid registration data")
	ErrInvalidCedula           = errs.New("invalid cedula")
	ErrAccountAlreadyExists    = errs.New("account already exists")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type RegistrationResult struct {
	UserID       uuid.UUID
	Role         user.Role
	WalkerStatus *user.WalkerStatus
}

type RegistrationCommands interface {
	RegisterOwner(ctx context.Context, req reqdto.RegistrationRequest) (*RegistrationResult, error)
	RegisterWalker(ctx context.Context, req reqdto.RegistrationRequest) (*RegistrationResult, error)
}

type registrationCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher *password.Hasher
}

func NewRegistrationCommands(uow shared.UnitOfWork, hasher *password.Hasher) RegistrationCommands {
	return &registrationCommandsImpl{
		uow:    uow,
		hasher: hasher,
	}
}

func (r *registrationCommandsImpl) RegisterOwner(ctx context.Context, req reqdto.RegistrationRequest) (*RegistrationResult, error) {
	return r.register(ctx, req, user.RoleOwner)
}

func (r *registrationCommandsImpl) RegisterWalker(ctx context.Context, req reqdto.RegistrationRequest) (*RegistrationResult, error) {
	return r.register(ctx, req, user.RoleWalker)
}

func (r *registrationCommandsImpl) register(ctx context.Context, req reqdto.RegistrationRequest, role user.Role) (*RegistrationResult, error) {
	profile, pw, err := req.ToDomain()
	if err != nil {
		if errors.Is(err, cedula.ErrInvalid) {
			return nil, errs.Mark(err, ErrInvalidCedula)
		}
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}

	hash, err := r.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(profile, hash, role)

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAccountAlreadyExists
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("user registered", "user_id", u.ID(), "role", role.String())

	return &RegistrationResult{
		UserID:       u.ID(),
		Role:         u.Role(),
		WalkerStatus: u.WalkerStatus(),
	}, nil
}
