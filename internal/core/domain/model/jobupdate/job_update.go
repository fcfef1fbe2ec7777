package jobupdate

import (
	"errors"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

var ErrJobUpdateIsNotConstructed = errors.New("JobUpdate must be created via NewJobUpdate, NewBlocker or RestoreJobUpdate")

// JobUpdate is one timestamped entry of an order's field log.
type JobUpdate struct {
	id            kernel.UUID
	orderID       kernel.UUID
	authorID      kernel.UUID
	updateType    Type
	message       string
	needs         *string
	createdAt     time.Time
	isConstructed bool
}

// NewJobUpdate validates and creates a log entry. needs is optional; blank
// needs are stored as nil.
func NewJobUpdate(
	id, orderID, authorID kernel.UUID, updateType Type, message string, needs *string, now time.Time,
) (*JobUpdate, error) {
	u := &JobUpdate{createdAt: now.UTC(), isConstructed: true}
	if err := errors.Join(
		u.setID(id),
		u.setOrderID(orderID),
		u.setAuthorID(authorID),
		u.setType(updateType),
		u.setMessage(message),
	); err != nil {
		return nil, err
	}
	u.setNeeds(needs)
	return u, nil
}

// NewBlocker creates the BLOCKER entry recorded alongside a BLOCKED status.
func NewBlocker(id, orderID, authorID kernel.UUID, reason string, now time.Time) (*JobUpdate, error) {
	return NewJobUpdate(id, orderID, authorID, Blocker, reason, nil, now)
}

// RestoreJobUpdate rebuilds an entry from persistence.
func RestoreJobUpdate(
	id, orderID, authorID kernel.UUID, updateType Type, message string, needs *string, createdAt time.Time,
) (*JobUpdate, error) {
	return NewJobUpdate(id, orderID, authorID, updateType, message, needs, createdAt)
}

func (u *JobUpdate) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrJobUpdateIsNotConstructed
	}
	return nil
}

func (u *JobUpdate) ID() kernel.UUID { return u.id }
func (u *JobUpdate) OrderID() kernel.UUID { return u.orderID }
func (u *JobUpdate) AuthorID() kernel.UUID { return u.authorID }
func (u *JobUpdate) Type() Type { return u.updateType }
func (u *JobUpdate) Message() string { return u.message }
func (u *JobUpdate) Needs() *string { return u.needs }
func (u *JobUpdate) CreatedAt() time.Time { return u.createdAt }

func (u *JobUpdate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *JobUpdate) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	u.orderID = id
	return nil
}

func (u *JobUpdate) setAuthorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("authorId", err)
	}
	u.authorID = id
	return nil
}

func (u *JobUpdate) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	u.updateType = t
	return nil
}

func (u *JobUpdate) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	u.message = message
	return nil
}

func (u *JobUpdate) setNeeds(needs *string) {
	if needs == nil || strings.TrimSpace(*needs) == "" {
		return
	}
	n := *needs
	u.needs = &n
}
