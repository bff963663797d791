package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "accounts/internal/mocks/repository"
	mockService "accounts/internal/mocks/service"
	"accounts/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type accountServiceFixture struct {
	service usecase.AccountUsecase
	repo    *mockRepo.MockAccountRepository
	hasher  *mockService.MockPasswordHasher
}

func createTestAccountService(t *testing.T) *accountServiceFixture {
	repo := mockRepo.NewMockAccountRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	return &accountServiceFixture{
		service: NewAccountService(AccountServiceParams{
			AccountRepo: repo,
			Hasher:      hasher,
			Logger:      newDiscardLogger(),
		}),
		repo:   repo,
		hasher: hasher,
	}
}

type credentialServiceFixture struct {
	service usecase.CredentialUsecase
	repo    *mockRepo.MockAccountRepository
	hasher  *mockService.MockPasswordHasher
}

func createTestCredentialService(t *testing.T) *credentialServiceFixture {
	repo := mockRepo.NewMockAccountRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	return &credentialServiceFixture{
		service: NewCredentialService(CredentialServiceParams{
			AccountRepo: repo,
			Hasher:      hasher,
			Logger:      newDiscardLogger(),
		}),
		repo:   repo,
		hasher: hasher,
	}
}
