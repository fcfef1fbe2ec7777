package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/team"
)

// TeamRepository defines the persistence contract for team aggregates.
type TeamRepository interface {
	// Add persists a new team.
	Add(ctx context.Context, aggregate *team.Team) error

	// Update persists the installer link of an existing team. Linking an
	// installer that already leads another team fails with errs.ErrConflict.
	Update(ctx context.Context, aggregate *team.Team) error

	// Get retrieves a team by its identifier.
	// Returns errs.ErrObjectNotFound when the team does not exist.
	Get(ctx context.Context, id kernel.UUID) (*team.Team, error)

	// GetForUpdate retrieves a team and locks its row until the surrounding
	// transaction ends. Concurrent bookings of the same team serialize here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*team.Team, error)
}
