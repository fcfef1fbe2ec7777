package order

import (
	"fmt"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

// ScheduleConflictError names the order already holding the requested days so
// the caller can show who is in the way.
type ScheduleConflictError struct {
	OrderID       kernel.UUID
	CustomerName  string
	ScheduledDate kernel.Date
	EstimatedDays int
}

// NewScheduleConflictError describes conflicting. It must be scheduled.
func NewScheduleConflictError(conflicting *Order) *ScheduleConflictError {
	e := &ScheduleConflictError{
		OrderID:      conflicting.ID(),
		CustomerName: conflicting.CustomerName(),
	}
	if s := conflicting.Schedule(); s != nil {
		e.ScheduledDate = s.Start()
		e.EstimatedDays = s.EstimatedDays()
	}
	return e
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("%s: team is booked for order %s (%s) from %s for %d day(s)",
		errs.ErrConflict, e.OrderID, e.CustomerName, e.ScheduledDate, e.EstimatedDays)
}

func (e *ScheduleConflictError) Unwrap() error {
	return errs.ErrConflict
}
