package queries

import (
	"errors"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/guard"
)

var ErrListTeamsQueryIsNotConstructed = errors.New("ListTeamsQuery must be created via NewListTeamsQuery constructor")

// ListTeamsQuery lists every team. Admin only.
type ListTeamsQuery struct {
	actor user.Actor
	guard guard.ConstructorGuard
}

func NewListTeamsQuery(actor user.Actor) ListTeamsQuery {
	return ListTeamsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListTeamsQuery) Validate() error {
	return q.guard.Validate(ErrListTeamsQueryIsNotConstructed)
}

func (q ListTeamsQuery) Actor() user.Actor { return q.actor }

// TeamView is a team with its linked installer, if any.
type TeamView struct {
	ID        kernel.UUID
	Name      string
	Installer *InstallerView
	CreatedAt time.Time
}

type InstallerView struct {
	ID    kernel.UUID
	Name  string
	Email *string
}
