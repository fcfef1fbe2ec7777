package services

import (
	"time"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/team"
)

// TeamScheduler books an order on a team's calendar.
//
// The installer is always taken from the team at the moment of booking; callers
// never pass one in. Conflicts are reported as *order.ScheduleConflictError.
//
// Example usage:
//
//	scheduler := services.NewTeamScheduler()
//	booked, _ := uow.OrderRepository().GetBookedByTeam(ctx, t.ID())
//	if err := scheduler.Schedule(o, t, schedule, booked, time.Now()); err != nil {
//	    var conflict *order.ScheduleConflictError
//	    if errors.As(err, &conflict) {
//	        // conflict.OrderID holds the competing booking
//	    }
//	    return err
//	}
type TeamScheduler struct {
	detector ScheduleConflictDetector
}

func NewTeamScheduler() TeamScheduler {
	return TeamScheduler{detector: NewScheduleConflictDetector()}
}

// Schedule assigns o to t for schedule unless one of booked overlaps it.
//
// Parameters:
//   - o: the order to book
//   - t: the team; it must have a linked installer
//   - schedule: requested days
//   - booked: the team's current bookings, as loaded inside the same transaction
//   - now: the update timestamp
//
// Returns:
//   - error: team.ErrTeamHasNoInstaller, *order.ScheduleConflictError or a
//     validation error from the aggregates
func (s TeamScheduler) Schedule(
	o *order.Order, t *team.Team, schedule order.Schedule, booked []*order.Order, now time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	installerID, err := t.RequireInstaller()
	if err != nil {
		return err
	}
	if err = schedule.Validate(); err != nil {
		return err
	}

	if conflicting := s.detector.FindConflict(t.ID(), schedule, booked, o.ID()); conflicting != nil {
		return order.NewScheduleConflictError(conflicting)
	}

	return o.Assign(order.Assignment{
		TeamID:      t.ID(),
		InstallerID: installerID,
		Schedule:    schedule,
	}, now)
}
