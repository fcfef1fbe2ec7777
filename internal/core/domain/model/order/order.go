package order

import (
	"errors"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is an installation job. It is the aggregate root for assignment,
// scheduling and status.
//
// Invariants:
//   - customer name, site address and description are non-blank
//   - assignedTeamID and assignedUserID are both set or both nil
//   - a schedule exists only while a team is assigned
//   - NEW orders are unassigned
type Order struct {
	id             kernel.UUID
	externalRef    *string
	customerName   string
	siteAddress    string
	description    string
	status         Status
	assignedTeamID *kernel.UUID
	assignedUserID *kernel.UUID
	schedule       *Schedule
	createdAt      time.Time
	updatedAt      time.Time
	isConstructed  bool
}

// Assignment groups the fields written together by Assign.
type Assignment struct {
	TeamID      kernel.UUID
	InstallerID kernel.UUID
	Schedule    Schedule
}

// NewOrder creates an unassigned order in NEW.
func NewOrder(
	id kernel.UUID, customerName, siteAddress, description string, externalRef *string, now time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}
	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setSiteAddress(siteAddress),
		o.setDescription(description),
	); err != nil {
		return nil, err
	}
	o.setExternalRef(externalRef)
	return o, nil
}

// RestoreOrder rebuilds an order from persistence, re-checking every invariant.
func RestoreOrder(
	id kernel.UUID,
	externalRef *string,
	customerName, siteAddress, description string,
	status Status,
	assignedTeamID, assignedUserID *kernel.UUID,
	schedule *Schedule,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerName, siteAddress, description, externalRef, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if (assignedTeamID == nil) != (assignedUserID == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"assignment", errors.New("team and installer must be set together"),
		)
	}
	if schedule != nil && assignedTeamID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"schedule", errors.New("an unassigned order cannot be scheduled"),
		)
	}
	if status == New && assignedTeamID != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status", errors.New("an assigned order cannot be NEW"),
		)
	}
	if status != New && assignedTeamID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status", errors.New("an unassigned order must be NEW"),
		)
	}

	o.status = status
	o.assignedTeamID = assignedTeamID
	o.assignedUserID = assignedUserID
	o.schedule = schedule
	o.updatedAt = updatedAt.UTC()
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) ExternalRef() *string { return o.externalRef }
func (o *Order) CustomerName() string { return o.customerName }
func (o *Order) SiteAddress() string { return o.siteAddress }
func (o *Order) Description() string { return o.description }
func (o *Order) Status() Status { return o.status }
func (o *Order) AssignedTeamID() *kernel.UUID { return o.assignedTeamID }
func (o *Order) AssignedUserID() *kernel.UUID { return o.assignedUserID }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Schedule returns the booked interval, nil while unscheduled.
func (o *Order) Schedule() *Schedule {
	return o.schedule
}

// Assign books the order for a team. The installer is the one the caller
// derived from the team; status is forced to ASSIGNED whatever it was.
func (o *Order) Assign(a Assignment, now time.Time) error {
	if err := errors.Join(
		a.TeamID.Validate(),
		a.InstallerID.Validate(),
		a.Schedule.Validate(),
	); err != nil {
		return err
	}
	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	teamID, installerID, schedule := a.TeamID, a.InstallerID, a.Schedule
	o.assignedTeamID = &teamID
	o.assignedUserID = &installerID
	o.schedule = &schedule
	o.status = newStatus
	o.updatedAt = now.UTC()
	return nil
}

// SetStatus applies a direct status change. Only status and the update
// timestamp change.
func (o *Order) SetStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	o.updatedAt = now.UTC()
	return nil
}

// OccupiedSchedule returns the schedule this order holds on its team's
// calendar, or false when it holds none (unscheduled or DONE).
func (o *Order) OccupiedSchedule() (Schedule, bool) {
	if o.schedule == nil || o.assignedTeamID == nil || !o.status.OccupiesCalendar() {
		return Schedule{}, false
	}
	return *o.schedule, true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	return setRequired(&o.customerName, "customerName", name)
}

func (o *Order) setSiteAddress(address string) error {
	return setRequired(&o.siteAddress, "siteAddress", address)
}

func (o *Order) setDescription(description string) error {
	return setRequired(&o.description, "description", description)
}

func (o *Order) setExternalRef(ref *string) {
	if ref == nil || strings.TrimSpace(*ref) == "" {
		o.externalRef = nil
		return
	}
	trimmed := strings.TrimSpace(*ref)
	o.externalRef = &trimmed
}

func setRequired(dst *string, param, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*dst = value
	return nil
}
