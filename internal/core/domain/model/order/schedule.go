package order

import (
	"errors"
	"fmt"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

const (
	MinEstimatedDays = 1
	MaxEstimatedDays = 30
)

var ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule, ParseSchedule or RestoreSchedule")

// Schedule is the closed day interval [Start, Start+EstimatedDays-1] a team
// is committed to an order. Time of day plays no part.
type Schedule struct {
	start         kernel.Date
	estimatedDays int
}

// NewSchedule validates a booking request. estimatedDays must lie in
// [MinEstimatedDays, MaxEstimatedDays].
func NewSchedule(start kernel.Date, estimatedDays int) (Schedule, error) {
	if estimatedDays < MinEstimatedDays || estimatedDays > MaxEstimatedDays {
		return Schedule{}, errs.NewValueIsOutOfRangeError(
			"estimatedDays", estimatedDays, MinEstimatedDays, MaxEstimatedDays,
		)
	}
	return RestoreSchedule(start, estimatedDays)
}

// ParseSchedule parses the date (YYYY-MM-DD or RFC 3339) and validates the range.
func ParseSchedule(scheduledDate string, estimatedDays int) (Schedule, error) {
	start, err := kernel.ParseDate(scheduledDate)
	if err != nil {
		return Schedule{}, fmt.Errorf("scheduledDate: %w", err)
	}
	return NewSchedule(start, estimatedDays)
}

// RestoreSchedule rebuilds a persisted schedule. Only the lower bound is
// enforced so data written under an older limit still loads.
func RestoreSchedule(start kernel.Date, estimatedDays int) (Schedule, error) {
	if err := start.Validate(); err != nil {
		return Schedule{}, err
	}
	if estimatedDays < MinEstimatedDays {
		return Schedule{}, errs.NewValueIsOutOfRangeError(
			"estimatedDays", estimatedDays, MinEstimatedDays, MaxEstimatedDays,
		)
	}
	return Schedule{start: start, estimatedDays: estimatedDays}, nil
}

func (s Schedule) Validate() error {
	if s.start.Validate() != nil || s.estimatedDays < MinEstimatedDays {
		return ErrScheduleIsNotConstructed
	}
	return nil
}

func (s Schedule) Start() kernel.Date {
	return s.start
}

func (s Schedule) EstimatedDays() int {
	return s.estimatedDays
}

// End is the last day of work, inclusive.
func (s Schedule) End() kernel.Date {
	return s.start.AddDays(s.estimatedDays - 1)
}

// Overlaps reports whether the two closed intervals share at least one day.
// Touching on a single day counts: a team cannot work two jobs the same day.
func (s Schedule) Overlaps(other Schedule) bool {
	return !s.start.After(other.End()) && !s.End().Before(other.start)
}

func (s Schedule) String() string {
	return fmt.Sprintf("%s..%s", s.start, s.End())
}
