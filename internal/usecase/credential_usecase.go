package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Password shape bounds enforced by the credential lifecycle.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 32
)

// ChangePasswordInput defines the data required to change an account's password.
type ChangePasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// CredentialUsecase defines the interface for the password-change workflow.
type CredentialUsecase interface {
	// ChangePassword validates the new password's shape, confirms the old
	// password against the stored hash, re-hashes and persists. It stops at
	// the first failure; a wrong old password never computes or writes a hash.
	ChangePassword(ctx context.Context, id uuid.UUID, input *ChangePasswordInput) error
}
