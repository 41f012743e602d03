package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates
// (buyers, partner designers, and administrators).
type UserRepository interface {
	// Add persists a new user aggregate. The user must be valid and not
	// already exist in the repository.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
