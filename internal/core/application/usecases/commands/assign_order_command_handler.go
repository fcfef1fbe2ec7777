package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
)

// AssignOrderCommandHandler books orders on team calendars.
//
// Checks run in this order, each failing with its own error:
//  1. the actor is an admin
//  2. the team exists (locked for the rest of the transaction) and has an installer
//  3. the order exists
//  4. the schedule is valid
//  5. no other booking of the team overlaps it
//
// The conflict check and the write run under the team row lock, so two
// concurrent bookings of one team cannot both pass the check.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	cmd, _ := NewAssignOrderCommand(actor, orderID, teamID, "2024-03-04", 2)
//	assigned, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // team is booked
//	case err != nil:
//	    return err
//	}
type AssignOrderCommandHandler struct {
	uowFactory SchedulingUoWFactory
	access     services.AccessResolver
	scheduler  services.TeamScheduler
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(uowFactory SchedulingUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessResolver(),
		scheduler:  services.NewTeamScheduler(),
	}
}

// Handle assigns the order and returns it with status forced to ASSIGNED.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.access.RequireAdmin(cmd.Actor()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	teamRepo := uow.TeamRepository()
	orderRepo := uow.OrderRepository()

	t, err := teamRepo.GetForUpdate(ctx, cmd.TeamID())
	if err != nil {
		return nil, err
	}
	if _, err = t.RequireInstaller(); err != nil {
		return nil, err
	}

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = h.access.Authorize(cmd.Actor(), o, services.ActionAssign); err != nil {
		return nil, err
	}

	schedule, err := order.ParseSchedule(cmd.ScheduledDate(), cmd.EstimatedDays())
	if err != nil {
		return nil, err
	}

	booked, err := orderRepo.GetBookedByTeam(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	if err = h.scheduler.Schedule(o, t, schedule, booked, time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
