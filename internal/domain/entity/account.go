// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the persisted user identity record. The ID is assigned by
// the store on creation and is immutable afterwards.
type Account struct {
	ID           uuid.UUID // Store-assigned unique identifier.
	Name         string    // Display name, 1-100 characters.
	Email        string    // Login identifier, unique across all accounts.
	PasswordHash string    // Opaque bcrypt hash. Never plaintext, never returned to callers.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
