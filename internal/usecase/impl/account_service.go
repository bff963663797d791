// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAccounts returns all accounts projected to {id, name, email}.
// The password hash never leaves this layer.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*usecase.AccountView, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list accounts")
	}

	views := make([]*usecase.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, toAccountView(account))
	}

	return views, nil
}

// GetAccount returns the projected record for a single account.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*usecase.AccountView, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnknownUser.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountView(account), nil
}

// CreateAccount orchestrates account creation: confirmation check, email
// uniqueness pre-check, hashing, persistence.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*usecase.AccountView, error) {
	srv.log(ctx).Info("Creating account", slog.String("email", input.Email))

	if input.Password != input.PasswordConfirmation {
		srv.log(ctx).Warn("Password confirmation mismatch during account creation", slog.String("email", input.Email))

		return nil, domainerrors.ErrPasswordMismatch.WrapMessage("account creation rejected")
	}

	// The pre-check and the create below are two separate store calls.
	// Two concurrent creations with the same email can both pass this
	// check; the store's unique index on email is the last line of defense.
	_, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailTaken.WrapMessage("account creation rejected")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during account creation", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("account creation failed")
	}

	newAccount := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	if err := srv.accountRepo.Create(ctx, newAccount); err != nil {
		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Account created", slog.Any("accountID", newAccount.ID))

	return toAccountView(newAccount), nil
}

// UpdateAccount persists new name/email for an account. Email uniqueness is
// not re-checked against other accounts here; the store index still rejects
// collisions at write time.
func (srv *accountService) UpdateAccount(ctx context.Context, id uuid.UUID, input *usecase.UpdateAccountInput) error {
	srv.log(ctx).Info("Updating account", slog.Any("accountID", id))

	if err := srv.accountRepo.Update(ctx, id, input.Name, input.Email); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Update matched no account", slog.Any("accountID", id))

			return domainerrors.ErrAccountUpdateFailed.WrapMessage("no matching account")
		}

		srv.log(ctx).Error("Failed to update account", slog.Any("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update account")
	}

	return nil
}

// DeleteAccount hard-deletes an account.
func (srv *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting account", slog.Any("accountID", id))

	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Delete matched no account", slog.Any("accountID", id))

			return domainerrors.ErrAccountDeleteFailed.WrapMessage("no matching account")
		}

		srv.log(ctx).Error("Failed to delete account", slog.Any("accountID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

// toAccountView projects an account entity to the caller-facing view.
func toAccountView(account *entity.Account) *usecase.AccountView {
	return &usecase.AccountView{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
	}
}
