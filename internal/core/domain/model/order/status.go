package order

import (
	"fmt"
	"strings"

	"fieldops/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	NEW ──assign──> ASSIGNED <──> IN_PROGRESS <──> BLOCKED <──> DONE
//	                   ^______________________________________|
//
// Any of ASSIGNED, IN_PROGRESS, BLOCKED and DONE can be set from any other of
// them. NEW is only left through assignment, and can never be set directly.
// DONE is terminal only by convention: it frees the team's calendar but the
// status API does not lock it.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	New
	Assigned
	InProgress
	Blocked
	Done
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		Assigned:   "ASSIGNED",
		InProgress: "IN_PROGRESS",
		Blocked:    "BLOCKED",
		Done:       "DONE",
	}
}

// getSettableStatuses lists the targets accepted by SetStatus.
func getSettableStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Assigned:   {},
		InProgress: {},
		Blocked:    {},
		Done:       {},
	}
}

// ParseStatus converts the wire name (e.g. "IN_PROGRESS") to a Status.
// Matching ignores case and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s < New || s > Done {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// MarshalText renders the wire name so Status can be used directly in JSON.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// OccupiesCalendar reports whether an order in this status blocks its
// team's scheduled days.
func (s Status) OccupiesCalendar() bool {
	return s != Done
}

// TransitionTo validates a direct status change and returns the new status.
//
// Valid transitions:
//   - any of ASSIGNED, IN_PROGRESS, BLOCKED, DONE -> any of the same set
//
// Invalid transitions:
//   - NEW -> anything (assignment is the only way out of NEW)
//   - anything -> NEW or UNKNOWN
func (s Status) TransitionTo(target Status) (Status, error) {
	if _, ok := getSettableStatuses()[target]; !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s cannot be set directly", target),
		)
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == New {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("a %s order must be assigned before its status can change", s),
		)
	}
	return target, nil
}

// Assign returns ASSIGNED. Assignment is accepted from every valid status and
// always resets the lifecycle to ASSIGNED.
func (s Status) Assign() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Assigned, nil
}
