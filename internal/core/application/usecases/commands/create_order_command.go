package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents an admin registering a new installation job.
// Field shape (non-blank customer, site, description) is enforced by the
// order aggregate once the actor has been authorized.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(actor, orderID, "Acme Corp", "1 Main St", "Install 12 panels", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor        user.Actor
	orderID      kernel.UUID
	customerName string
	siteAddress  string
	description  string
	externalRef  *string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order in NEW.
func NewCreateOrderCommand(
	actor user.Actor, orderID kernel.UUID, customerName, siteAddress, description string, externalRef *string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor:        actor,
		customerName: customerName,
		siteAddress:  siteAddress,
		description:  description,
		externalRef:  externalRef,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() user.Actor { return c.actor }
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreateOrderCommand) CustomerName() string { return c.customerName }
func (c CreateOrderCommand) SiteAddress() string { return c.siteAddress }
func (c CreateOrderCommand) Description() string { return c.description }
func (c CreateOrderCommand) ExternalRef() *string { return c.externalRef }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
