// Package order provides the Order aggregate: an installation job tracked from
// intake to completion.
//
// The package includes:
//   - Order: the aggregate root holding customer data, assignment and schedule
//   - Status: the lifecycle state machine
//   - Schedule: the closed day interval a team is committed to an order
//   - ScheduleConflictError: raised when two schedules for one team overlap
//
// Key business rules:
//   - Orders start in NEW and leave it only through assignment
//   - Assignment sets team, installer and schedule together and forces ASSIGNED
//   - ASSIGNED, IN_PROGRESS, BLOCKED and DONE are reachable from each other
//   - DONE orders no longer occupy their team's calendar
package order
