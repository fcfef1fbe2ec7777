package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/jobupdate"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
)

// AppendJobUpdateCommandHandler appends manual field log entries. Entries may
// be added in any status, DONE included.
type AppendJobUpdateCommandHandler struct {
	uowFactory OrderLogUoWFactory
	access     services.AccessResolver
}

// NewAppendJobUpdateCommandHandler creates a handler for log appends.
func NewAppendJobUpdateCommandHandler(uowFactory OrderLogUoWFactory) AppendJobUpdateCommandHandler {
	return AppendJobUpdateCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessResolver(),
	}
}

// Handle authorizes the actor against the order and stores the entry.
func (h AppendJobUpdateCommandHandler) Handle(
	ctx context.Context, cmd AppendJobUpdateCommand,
) (*jobupdate.JobUpdate, error) {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = h.access.Authorize(cmd.Actor(), o, services.ActionAppendUpdate); err != nil {
		return nil, err
	}

	updateType, err := jobupdate.ParseType(cmd.Type())
	if err != nil {
		return nil, err
	}

	entry, err := jobupdate.NewJobUpdate(
		kernel.NewUUID(), o.ID(), cmd.Actor().UserID(), updateType, cmd.Message(), cmd.Needs(), time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.JobUpdateRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
