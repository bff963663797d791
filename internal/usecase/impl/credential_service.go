package impl

import (
	"context"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// CredentialServiceParams holds dependencies for credentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ChangePassword runs the password-change workflow, terminal on the first
// failure: shape check, lookup, old-password verification, commit.
func (srv *credentialService) ChangePassword(ctx context.Context, id uuid.UUID, input *usecase.ChangePasswordInput) error {
	// 1. Shape check, before any store access.
	if err := validateNewPassword(input.NewPassword, input.ConfirmPassword); err != nil {
		srv.log(ctx).Warn("Password change rejected by shape check", slog.Any("accountID", id))

		return err
	}

	// 2. Lookup.
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Password change for unknown account", slog.Any("accountID", id))

			return domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return errors.Wrap(err, "failed to find account")
	}

	// 3. Authenticate against the stored hash. A mismatch stops here; no
	// new hash is computed or written.
	if !srv.hasher.Check(input.OldPassword, account.PasswordHash) {
		srv.log(ctx).Warn("Old password mismatch", slog.Any("accountID", id))

		return domainerrors.ErrInvalidCredentials.WrapMessage("password change rejected")
	}

	// 4. Commit: re-hash and persist. Effective immediately.
	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("accountID", id), slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("password change failed")
	}

	if err := srv.accountRepo.UpdatePassword(ctx, id, newHash); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// The account was deleted between lookup and commit.
			return domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		srv.log(ctx).Error("Failed to persist new password hash", slog.Any("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to persist new password hash")
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", id))

	return nil
}

// validateNewPassword enforces the password shape rules: length within
// bounds and matching confirmation.
func validateNewPassword(newPassword, confirmPassword string) error {
	if len(newPassword) < usecase.MinPasswordLength || len(newPassword) > usecase.MaxPasswordLength {
		return domainerrors.ErrInvalidPassword.WrapMessage("password length out of bounds")
	}
	if newPassword != confirmPassword {
		return domainerrors.ErrInvalidPassword.WrapMessage("password confirmation mismatch")
	}

	return nil
}
