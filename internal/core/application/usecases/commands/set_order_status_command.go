package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand moves an order to another status. blockedReason is
// required when the target is BLOCKED and ignored otherwise.
//
// Example:
//
//	cmd, _ := NewSetOrderStatusCommand(actor, orderID, "BLOCKED", "No roof access")
//	updated, err := handler.Handle(ctx, cmd)
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor         user.Actor
	orderID       kernel.UUID
	status        string
	blockedReason string

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a status change command. status is the
// wire name and is parsed by the handler after authorization.
func NewSetOrderStatusCommand(
	actor user.Actor, orderID kernel.UUID, status, blockedReason string,
) (SetOrderStatusCommand, error) {
	cmd := SetOrderStatusCommand{
		actor:         actor,
		status:        status,
		blockedReason: blockedReason,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

func (c SetOrderStatusCommand) Actor() user.Actor { return c.actor }
func (c SetOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c SetOrderStatusCommand) Status() string { return c.status }
func (c SetOrderStatusCommand) BlockedReason() string { return c.blockedReason }

func (c *SetOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
