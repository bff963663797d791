package impl

import (
	"context"
	"log/slog"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bootstrapService implements the BootstrapUsecase interface.
type bootstrapService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// BootstrapServiceParams holds dependencies for bootstrapService, injected by Fx.
type BootstrapServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewBootstrapService is the constructor for bootstrapService.
func NewBootstrapService(params BootstrapServiceParams) usecase.BootstrapUsecase {
	return &bootstrapService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// EnsureAdminAccount creates the seed account if absent. The operation is
// idempotent: rerunning it against an existing email is a no-op.
func (srv *bootstrapService) EnsureAdminAccount(ctx context.Context, input *usecase.SeedAdminInput) (bool, error) {
	if input.Name == "" || input.Email == "" {
		return false, domainerrors.ErrValidationFailed.WrapMessage("seed account requires name and email")
	}
	if len(input.Password) < usecase.MinPasswordLength || len(input.Password) > usecase.MaxPasswordLength {
		return false, domainerrors.ErrValidationFailed.WrapMessage("seed password length out of bounds")
	}

	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.logger.Info("Seed account already present, skipping", slog.String("email", input.Email))

		return false, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return false, errors.Wrap(err, "failed to check for existing seed account")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return false, domainerrors.ErrPasswordHashFailed.WrapMessage("seed account creation failed")
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return false, errors.Wrap(err, "failed to create seed account")
	}

	srv.logger.Info("Seed account created", slog.String("email", input.Email), slog.Any("accountID", account.ID))

	return true, nil
}
