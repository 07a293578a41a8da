package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
// Implementations load the Roles slice from the user_roles table when
// returning users, and persist it on Save.
type UserRepository interface {
	// FindByID finds a user by ID, including staff roles
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username, including staff roles
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByRole finds all users holding the given staff role
	FindByRole(ctx context.Context, role StaffRole) ([]User, error)

	// ExistsByUsername checks if a username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Save creates or updates a user and its role memberships
	Save(ctx context.Context, user *User) error

	// Delete deletes a user and its role memberships
	Delete(ctx context.Context, id uuid.UUID) error
}
