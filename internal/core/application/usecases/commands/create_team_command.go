package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/guard"
)

var ErrCreateTeamCommandIsNotConstructed = errors.New(
	"CreateTeamCommand must be created via NewCreateTeamCommand constructor",
)

// CreateTeamCommand registers a new crew without an installer.
type CreateTeamCommand struct { //nolint:recvcheck //using for validation
	actor  user.Actor
	teamID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

func NewCreateTeamCommand(actor user.Actor, teamID kernel.UUID, name string) (CreateTeamCommand, error) {
	cmd := CreateTeamCommand{
		actor: actor,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTeamID(teamID); err != nil {
		return CreateTeamCommand{}, err
	}

	return cmd, nil
}

func (c CreateTeamCommand) Validate() error {
	return c.guard.Validate(ErrCreateTeamCommandIsNotConstructed)
}

func (c CreateTeamCommand) Actor() user.Actor { return c.actor }
func (c CreateTeamCommand) TeamID() kernel.UUID { return c.teamID }
func (c CreateTeamCommand) Name() string { return c.name }

func (c *CreateTeamCommand) setTeamID(teamID kernel.UUID) error {
	if err := teamID.Validate(); err != nil {
		return err
	}

	c.teamID = teamID
	return nil
}
