// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
// Reads return it for absence instead of a generic error; writes return it when no
// record matched, so callers can tell "nothing to update" apart from "write failed".
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
// The store is the sole owner of persisted account state and the sole arbiter of
// the email uniqueness index.
type AccountRepository interface {
	// List retrieves all accounts.
	List(ctx context.Context) ([]*entity.Account, error)

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies the name and email of an existing account.
	Update(ctx context.Context, id uuid.UUID, name, email string) error

	// UpdatePassword replaces the stored password hash of an account.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes an account. The delete is hard; no soft-delete state is kept.
	Delete(ctx context.Context, id uuid.UUID) error
}
