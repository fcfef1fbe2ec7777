// Package ports defines the persistence contracts of the field operations
// domain. Adapters in internal/adapters/out implement them; the application
// layer depends only on these interfaces.
package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetBookedByTeam returns every order of teamID that holds days on the
	// team's calendar: assigned to the team, scheduled and not DONE.
	//
	// Called inside the assignment transaction after the team row is locked,
	// so the result cannot change before the booking is written.
	GetBookedByTeam(ctx context.Context, teamID kernel.UUID) ([]*order.Order, error)
}
