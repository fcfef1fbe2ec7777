package user

import "fieldops/internal/core/domain/model/kernel"

// Actor is the identity a request runs as. The zero value is anonymous.
//
// It is a tagged variant rather than a *User so authorization stays a pure
// function of (Actor, order snapshot) and can be tested without a store.
type Actor struct {
	userID kernel.UUID
	role   Role
	teamID *kernel.UUID
}

// Anonymous returns the identity of an unauthenticated request.
func Anonymous() Actor {
	return Actor{}
}

func NewAdminActor(userID kernel.UUID) Actor {
	return Actor{userID: userID, role: Admin}
}

// NewInstallerActor builds an installer identity. teamID is copied.
func NewInstallerActor(userID kernel.UUID, teamID *kernel.UUID) Actor {
	a := Actor{userID: userID, role: Installer}
	if teamID != nil {
		id := *teamID
		a.teamID = &id
	}
	return a
}

func (a Actor) IsAuthenticated() bool {
	return a.userID.Validate() == nil && a.role.Validate() == nil
}

func (a Actor) IsAdmin() bool {
	return a.IsAuthenticated() && a.role == Admin
}

func (a Actor) IsInstaller() bool {
	return a.IsAuthenticated() && a.role == Installer
}

func (a Actor) UserID() kernel.UUID { return a.userID }
func (a Actor) Role() Role { return a.role }
func (a Actor) TeamID() *kernel.UUID { return a.teamID }
