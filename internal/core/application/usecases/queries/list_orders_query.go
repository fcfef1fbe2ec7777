package queries

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery constructor")

// ListOrdersQuery lists the orders visible to actor, optionally narrowed by
// status and team. Installers only ever see orders assigned to them directly
// or to their team, whatever filter they pass.
type ListOrdersQuery struct {
	actor  user.Actor
	status *order.Status
	teamID *kernel.UUID
	guard  guard.ConstructorGuard
}

// NewListOrdersQuery parses the optional status filter by its wire name
// ("" or nil means any status).
func NewListOrdersQuery(actor user.Actor, status *string, teamID *kernel.UUID) (ListOrdersQuery, error) {
	q := ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}

	if status != nil && *status != "" {
		parsed, err := order.ParseStatus(*status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = &parsed
	}
	if teamID != nil {
		if err := teamID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		id := *teamID
		q.teamID = &id
	}
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() user.Actor { return q.actor }
func (q ListOrdersQuery) Status() *order.Status { return q.status }
func (q ListOrdersQuery) TeamID() *kernel.UUID { return q.teamID }
