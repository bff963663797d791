// Package usecase contains testify mocks for the usecase contracts consumed
// by the delivery layer.
package usecase

import (
	"context"
	"testing"

	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a mock implementation of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

// NewMockAccountUsecase creates a mock bound to the test's lifecycle.
func NewMockAccountUsecase(t *testing.T) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) ListAccounts(ctx context.Context) ([]*usecase.AccountView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*usecase.AccountView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) GetAccount(ctx context.Context, id uuid.UUID) (*usecase.AccountView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*usecase.AccountView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*usecase.AccountView, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*usecase.AccountView), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) UpdateAccount(ctx context.Context, id uuid.UUID, input *usecase.UpdateAccountInput) error {
	args := m.Called(ctx, id, input)

	return args.Error(0)
}

func (m *MockAccountUsecase) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockCredentialUsecase is a mock implementation of usecase.CredentialUsecase.
type MockCredentialUsecase struct {
	mock.Mock
}

// NewMockCredentialUsecase creates a mock bound to the test's lifecycle.
func NewMockCredentialUsecase(t *testing.T) *MockCredentialUsecase {
	m := &MockCredentialUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCredentialUsecase) ChangePassword(ctx context.Context, id uuid.UUID, input *usecase.ChangePasswordInput) error {
	args := m.Called(ctx, id, input)

	return args.Error(0)
}
