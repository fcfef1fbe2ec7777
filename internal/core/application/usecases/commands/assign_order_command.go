package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand books an order on a team's calendar.
//
// scheduledDate and estimatedDays are kept raw: they are validated by the
// handler after the actor, team and order checks, so a caller learns about a
// missing team before a malformed date.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(actor, orderID, teamID, "2024-03-01", 3)
//	if err != nil {
//	    return err
//	}
//	assigned, err := handler.Handle(ctx, cmd)
//	var conflict *order.ScheduleConflictError
//	if errors.As(err, &conflict) {
//	    // conflict.OrderID is already booked on those days
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	actor         user.Actor
	orderID       kernel.UUID
	teamID        kernel.UUID
	scheduledDate string
	estimatedDays int

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates an assignment command.
func NewAssignOrderCommand(
	actor user.Actor, orderID, teamID kernel.UUID, scheduledDate string, estimatedDays int,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		actor:         actor,
		scheduledDate: scheduledDate,
		estimatedDays: estimatedDays,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTeamID(teamID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) Actor() user.Actor { return c.actor }
func (c AssignOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c AssignOrderCommand) TeamID() kernel.UUID { return c.teamID }
func (c AssignOrderCommand) ScheduledDate() string { return c.scheduledDate }
func (c AssignOrderCommand) EstimatedDays() int { return c.estimatedDays }

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setTeamID(teamID kernel.UUID) error {
	if err := teamID.Validate(); err != nil {
		return err
	}

	c.teamID = teamID
	return nil
}
