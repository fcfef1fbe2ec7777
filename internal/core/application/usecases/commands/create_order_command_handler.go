package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
)

// CreateOrderCommandHandler registers new orders. Only admins may create them.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	access     services.AccessResolver
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessResolver(),
	}
}

// Handle authorizes the actor, builds the order in NEW and persists it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.access.RequireAdmin(cmd.Actor()); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerName(), cmd.SiteAddress(), cmd.Description(), cmd.ExternalRef(), time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
