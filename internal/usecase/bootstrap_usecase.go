package usecase

import "context"

// SeedAdminInput defines the identity seeded by the operator tool.
type SeedAdminInput struct {
	Name     string
	Email    string
	Password string
}

// BootstrapUsecase defines explicit, operator-invoked setup operations.
// Nothing here runs as an import side effect.
type BootstrapUsecase interface {
	// EnsureAdminAccount creates the given account if no account with its
	// email exists yet. It reports whether a new account was created and
	// short-circuits without writing when one is already present.
	EnsureAdminAccount(ctx context.Context, input *SeedAdminInput) (created bool, err error)
}
