package impl

import (
	"context"
	"testing"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountService_CreateAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.CreateAccountInput{
		Name:                 "Alice",
		Email:                "alice@example.com",
		Password:             "secret99",
		PasswordConfirmation: "secret99",
	}

	fx.repo.On("FindByEmail", ctx, "alice@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", "secret99").Return("$2a$10$fakehash", nil)
	fx.repo.On("Create", ctx, mock.MatchedBy(func(account *entity.Account) bool {
		return account.Name == "Alice" &&
			account.Email == "alice@example.com" &&
			account.PasswordHash == "$2a$10$fakehash"
	})).Return(nil)

	view, err := fx.service.CreateAccount(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, "Alice", view.Name)
	assert.Equal(t, "alice@example.com", view.Email)
}

func TestAccountService_CreateAccount_PasswordMismatch(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.CreateAccountInput{
		Name:                 "Alice",
		Email:                "alice@example.com",
		Password:             "secret99",
		PasswordConfirmation: "different",
	}

	view, err := fx.service.CreateAccount(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
	assert.Nil(t, view)
	// The mismatch is terminal before any store or hasher access.
	fx.repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAccountService_CreateAccount_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.CreateAccountInput{
		Name:                 "Second Alice",
		Email:                "alice@example.com",
		Password:             "secret99",
		PasswordConfirmation: "secret99",
	}

	existing := &entity.Account{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	fx.repo.On("FindByEmail", ctx, "alice@example.com").Return(existing, nil)

	view, err := fx.service.CreateAccount(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
	assert.Nil(t, view)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAccountService_CreateAccount_EmailCheckError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.CreateAccountInput{
		Name:                 "Alice",
		Email:                "alice@example.com",
		Password:             "secret99",
		PasswordConfirmation: "secret99",
	}

	fx.repo.On("FindByEmail", ctx, "alice@example.com").Return(nil, errors.New("db error"))

	view, err := fx.service.CreateAccount(ctx, input)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check email availability")
	assert.Nil(t, view)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_CreateAccount_HashError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	input := &usecase.CreateAccountInput{
		Name:                 "Alice",
		Email:                "alice@example.com",
		Password:             "secret99",
		PasswordConfirmation: "secret99",
	}

	fx.repo.On("FindByEmail", ctx, "alice@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.On("Hash", "secret99").Return("", errors.New("hash failure"))

	view, err := fx.service.CreateAccount(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	assert.Nil(t, view)
	fx.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_GetAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.repo.On("FindByID", ctx, accountID).Return(&entity.Account{
		ID:           accountID,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$fakehash",
	}, nil)

	view, err := fx.service.GetAccount(ctx, accountID)

	assert.NoError(t, err)
	assert.Equal(t, accountID, view.ID)
	assert.Equal(t, "Alice", view.Name)
	assert.Equal(t, "alice@example.com", view.Email)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.repo.On("FindByID", ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	view, err := fx.service.GetAccount(ctx, accountID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownUser))
	assert.Nil(t, view)
}

func TestAccountService_ListAccounts_Projection(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.repo.On("List", ctx).Return([]*entity.Account{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$10$a"},
		{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", PasswordHash: "$2a$10$b"},
	}, nil)

	views, err := fx.service.ListAccounts(ctx)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "Alice", views[0].Name)
	assert.Equal(t, "bob@example.com", views[1].Email)
}

func TestAccountService_ListAccounts_Empty(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.repo.On("List", ctx).Return([]*entity.Account{}, nil)

	views, err := fx.service.ListAccounts(ctx)

	assert.NoError(t, err)
	assert.Empty(t, views)
}

func TestAccountService_UpdateAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.repo.On("Update", ctx, accountID, "Alice Cooper", "alice.cooper@example.com").Return(nil)

	err := fx.service.UpdateAccount(ctx, accountID, &usecase.UpdateAccountInput{
		Name:  "Alice Cooper",
		Email: "alice.cooper@example.com",
	})

	assert.NoError(t, err)
}

func TestAccountService_UpdateAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.repo.On("Update", ctx, accountID, "Ghost", "ghost@example.com").Return(repository.ErrAccountNotFound)

	err := fx.service.UpdateAccount(ctx, accountID, &usecase.UpdateAccountInput{
		Name:  "Ghost",
		Email: "ghost@example.com",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountUpdateFailed))
}

func TestAccountService_DeleteAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.repo.On("Delete", ctx, accountID).Return(nil)

	assert.NoError(t, fx.service.DeleteAccount(ctx, accountID))
}

func TestAccountService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.repo.On("Delete", ctx, accountID).Return(repository.ErrAccountNotFound)

	err := fx.service.DeleteAccount(ctx, accountID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountDeleteFailed))
}
