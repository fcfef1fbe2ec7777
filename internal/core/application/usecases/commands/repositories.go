// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: authorization, validation,
// transaction management and persistence.
package commands

import (
	"context"

	"fieldops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it writes through.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TeamRepoFactory provides access to the team repository within a transaction.
	TeamRepoFactory interface {
		TeamRepository() ports.TeamRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// JobUpdateRepoFactory provides access to the update log within a transaction.
	JobUpdateRepoFactory interface {
		JobUpdateRepository() ports.JobUpdateRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SchedulingUoW manages the assignment transaction: the team row lock,
	// the team's bookings and the order write share one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   t, err := uow.TeamRepository().GetForUpdate(ctx, teamID)
	//   booked, err := uow.OrderRepository().GetBookedByTeam(ctx, teamID)
	//   // ... schedule and update the order
	//
	//   err = uow.Commit(ctx)
	SchedulingUoW interface {
		TxManager
		TeamRepoFactory
		OrderRepoFactory
	}

	// SchedulingUoWFactory creates new scheduling unit of work instances.
	SchedulingUoWFactory interface {
		Create() SchedulingUoW
	}

	// OrderLogUoW manages transactions that write an order together with its
	// update log.
	OrderLogUoW interface {
		TxManager
		OrderRepoFactory
		JobUpdateRepoFactory
	}

	// OrderLogUoWFactory creates new order log unit of work instances.
	OrderLogUoWFactory interface {
		Create() OrderLogUoW
	}

	// TeamUoW manages transactions for team-only operations.
	TeamUoW interface {
		TxManager
		TeamRepoFactory
	}

	// TeamUoWFactory creates new team unit of work instances.
	TeamUoWFactory interface {
		Create() TeamUoW
	}

	// StaffUoW manages transactions that create a user and link it to a team.
	StaffUoW interface {
		TxManager
		TeamRepoFactory
		UserRepoFactory
	}

	// StaffUoWFactory creates new staff unit of work instances.
	StaffUoWFactory interface {
		Create() StaffUoW
	}
)
