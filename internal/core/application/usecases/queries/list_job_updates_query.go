package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/jobupdate"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/guard"
)

var ErrListJobUpdatesQueryIsNotConstructed = errors.New(
	"ListJobUpdatesQuery must be created via NewListJobUpdatesQuery constructor",
)

// ListJobUpdatesQuery reads the field log of one order.
type ListJobUpdatesQuery struct {
	actor   user.Actor
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewListJobUpdatesQuery(actor user.Actor, orderID kernel.UUID) (ListJobUpdatesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListJobUpdatesQuery{}, err
	}
	return ListJobUpdatesQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListJobUpdatesQuery) Validate() error {
	return q.guard.Validate(ErrListJobUpdatesQueryIsNotConstructed)
}

func (q ListJobUpdatesQuery) Actor() user.Actor { return q.actor }
func (q ListJobUpdatesQuery) OrderID() kernel.UUID { return q.orderID }

// JobUpdateView is a log entry with its author's name. AuthorName is nil
// when the author row no longer resolves.
type JobUpdateView struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	AuthorID   kernel.UUID
	AuthorName *string
	Type       jobupdate.Type
	Message    string
	Needs      *string
	CreatedAt  time.Time
}
