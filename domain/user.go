package domain

import "context"

// User represents a forum member. Accounts are created by the auth service;
// the forum only needs the id for ownership and the username for display.
type User struct {
	ID       string // Unique identifier, "user-" prefixed
	Username string // Login username (unique)
	Password string // Bcrypt hashed password
	Fullname string // Display name
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	// Returns ErrConflict if the username already exists.
	Insert(ctx context.Context, u *User) error

	// GetByUsername retrieves a user by their username.
	// Returns ErrNotFound if the user doesn't exist.
	GetByUsername(ctx context.Context, username string) (User, error)
}
