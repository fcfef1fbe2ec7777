// Package kernel provides the value objects shared by every aggregate of the
// field operations domain.
//
// The package includes:
//   - UUID: identifier for orders, teams, users and job updates
//   - Date: a calendar day with no time-of-day component, used for scheduling
//
// Both are immutable and safe for concurrent use. Their zero values are invalid
// and are rejected by Validate, so a forgotten field never reaches storage.
package kernel
