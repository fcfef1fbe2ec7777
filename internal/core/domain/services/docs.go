// Package services provides domain services that coordinate decisions spanning
// more than one aggregate of the field operations system.
//
// The package includes:
//   - AccessResolver: decides whether an actor may act on an order
//   - ScheduleConflictDetector: finds a booking that overlaps a candidate schedule
//   - TeamScheduler: books an order on a team's calendar, deriving the installer
//
// All services are pure: they receive aggregates already loaded by the
// application layer and never touch storage.
package services
