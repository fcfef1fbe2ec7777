package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Add persists a new user.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its identifier.
	// Returns errs.ErrObjectNotFound when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
