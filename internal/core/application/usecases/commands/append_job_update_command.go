package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/guard"
)

var ErrAppendJobUpdateCommandIsNotConstructed = errors.New(
	"AppendJobUpdateCommand must be created via NewAppendJobUpdateCommand constructor",
)

// AppendJobUpdateCommand adds a manual entry to an order's field log.
//
// Example:
//
//	needs := "2 extra brackets"
//	cmd, _ := NewAppendJobUpdateCommand(actor, orderID, "PROGRESS", "Rails mounted", &needs)
//	entry, err := handler.Handle(ctx, cmd)
type AppendJobUpdateCommand struct { //nolint:recvcheck //using for validation
	actor      user.Actor
	orderID    kernel.UUID
	updateType string
	message    string
	needs      *string

	guard guard.ConstructorGuard
}

// NewAppendJobUpdateCommand creates an append command. Type and message are
// checked by the handler once the actor is authorized.
func NewAppendJobUpdateCommand(
	actor user.Actor, orderID kernel.UUID, updateType, message string, needs *string,
) (AppendJobUpdateCommand, error) {
	cmd := AppendJobUpdateCommand{
		actor:      actor,
		updateType: updateType,
		message:    message,
		needs:      needs,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AppendJobUpdateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendJobUpdateCommand) Validate() error {
	return c.guard.Validate(ErrAppendJobUpdateCommandIsNotConstructed)
}

func (c AppendJobUpdateCommand) Actor() user.Actor { return c.actor }
func (c AppendJobUpdateCommand) OrderID() kernel.UUID { return c.orderID }
func (c AppendJobUpdateCommand) Type() string { return c.updateType }
func (c AppendJobUpdateCommand) Message() string { return c.message }
func (c AppendJobUpdateCommand) Needs() *string { return c.needs }

func (c *AppendJobUpdateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
