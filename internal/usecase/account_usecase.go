// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to create a new account.
type CreateAccountInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// UpdateAccountInput defines the data required to update an account's profile fields.
type UpdateAccountInput struct {
	Name  string
	Email string
}

// --- Output DTOs ---

// AccountView is the projection of an account returned to callers.
// It never carries the password hash.
type AccountView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	ListAccounts(ctx context.Context) ([]*AccountView, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*AccountView, error)
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*AccountView, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, input *UpdateAccountInput) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
