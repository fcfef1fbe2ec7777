package services

import (
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
)

// ScheduleConflictDetector finds existing bookings that overlap a candidate
// schedule on one team's calendar.
//
// Business rules:
//   - bookings are closed day intervals [start, start+days-1]
//   - sharing a single day is a conflict
//   - DONE and unscheduled orders hold no days
//   - the order being (re)assigned never conflicts with itself
type ScheduleConflictDetector struct{}

func NewScheduleConflictDetector() ScheduleConflictDetector {
	return ScheduleConflictDetector{}
}

// FindConflict returns the first order in booked that is assigned to teamID
// and holds days overlapping candidate, or nil when the days are free.
//
// Parameters:
//   - teamID: the team whose calendar is checked
//   - candidate: the requested schedule
//   - booked: orders to compare against; orders of other teams are ignored
//   - excludeID: the order being assigned
func (ScheduleConflictDetector) FindConflict(
	teamID kernel.UUID, candidate order.Schedule, booked []*order.Order, excludeID kernel.UUID,
) *order.Order {
	for _, o := range booked {
		if o == nil || o.ID().IsEqual(excludeID) {
			continue
		}
		if o.AssignedTeamID() == nil || !o.AssignedTeamID().IsEqual(teamID) {
			continue
		}
		held, ok := o.OccupiedSchedule()
		if !ok {
			continue
		}
		if candidate.Overlaps(held) {
			return o
		}
	}
	return nil
}
