// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

// PasswordHasher abstracts the one-way transform applied to plaintext
// credentials. Implementations must salt internally and retain no state
// between calls.
type PasswordHasher interface {
	// Hash generates an opaque salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext matches the stored hash.
	// It never returns an error; malformed hashes simply compare false.
	Check(password, hash string) bool
}
