package commands

import (
	"context"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/jobupdate"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"
)

// ErrBlockedReasonRequired is returned when BLOCKED is requested without a reason.
var ErrBlockedReasonRequired = errs.NewValueIsRequiredError("blockedReason")

// SetOrderStatusCommandHandler applies direct status changes.
//
// Moving to BLOCKED appends a BLOCKER entry carrying the reason, authored by
// the actor, in the same transaction as the status write. Other targets write
// the status and the update timestamp only.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderLogUoWFactory
	access     services.AccessResolver
}

// NewSetOrderStatusCommandHandler creates a handler for status changes.
func NewSetOrderStatusCommandHandler(uowFactory OrderLogUoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessResolver(),
	}
}

// Handle authorizes the actor against the order, validates the target and
// persists the change.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.access.RequireAuthenticated(cmd.Actor()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = h.access.Authorize(cmd.Actor(), o, services.ActionChangeStatus); err != nil {
		return nil, err
	}

	target, err := order.ParseStatus(cmd.Status())
	if err != nil {
		return nil, err
	}
	if target == order.Blocked && strings.TrimSpace(cmd.BlockedReason()) == "" {
		return nil, ErrBlockedReasonRequired
	}

	now := time.Now()
	if err = o.SetStatus(target, now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if target == order.Blocked {
		blocker, blockerErr := jobupdate.NewBlocker(
			kernel.NewUUID(), o.ID(), cmd.Actor().UserID(), cmd.BlockedReason(), now,
		)
		if blockerErr != nil {
			return nil, blockerErr
		}
		if err = uow.JobUpdateRepository().Add(ctx, blocker); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
