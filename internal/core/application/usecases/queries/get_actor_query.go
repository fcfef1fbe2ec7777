package queries

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/guard"
)

var ErrGetActorQueryIsNotConstructed = errors.New("GetActorQuery must be created via NewGetActorQuery constructor")

// GetActorQuery resolves a session subject to the user it names.
type GetActorQuery struct {
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetActorQuery(userID kernel.UUID) (GetActorQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetActorQuery{}, err
	}
	return GetActorQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActorQuery) Validate() error {
	return q.guard.Validate(ErrGetActorQueryIsNotConstructed)
}

func (q GetActorQuery) UserID() kernel.UUID { return q.userID }

// ActorView is the signed-in user as returned by GET /api/me.
type ActorView struct {
	ID       kernel.UUID
	Name     string
	Email    *string
	Role     user.Role
	TeamID   *kernel.UUID
	TeamName *string
}

// Actor returns the request identity for this user.
func (v ActorView) Actor() user.Actor {
	if v.Role == user.Admin {
		return user.NewAdminActor(v.ID)
	}
	return user.NewInstallerActor(v.ID, v.TeamID)
}
