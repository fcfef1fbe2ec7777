package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/guard"
)

var ErrCreateInstallerCommandIsNotConstructed = errors.New(
	"CreateInstallerCommand must be created via NewCreateInstallerCommand constructor",
)

// CreateInstallerCommand creates an installer and links it to a team that has
// none yet.
//
// Example:
//
//	email := "ivan@example.com"
//	cmd, _ := NewCreateInstallerCommand(actor, kernel.NewUUID(), teamID, "Ivan", &email)
//	installer, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // the team already has an installer
//	}
type CreateInstallerCommand struct { //nolint:recvcheck //using for validation
	actor  user.Actor
	userID kernel.UUID
	teamID kernel.UUID
	name   string
	email  *string

	guard guard.ConstructorGuard
}

func NewCreateInstallerCommand(
	actor user.Actor, userID, teamID kernel.UUID, name string, email *string,
) (CreateInstallerCommand, error) {
	cmd := CreateInstallerCommand{
		actor: actor,
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setTeamID(teamID),
	); err != nil {
		return CreateInstallerCommand{}, err
	}

	return cmd, nil
}

func (c CreateInstallerCommand) Validate() error {
	return c.guard.Validate(ErrCreateInstallerCommandIsNotConstructed)
}

func (c CreateInstallerCommand) Actor() user.Actor { return c.actor }
func (c CreateInstallerCommand) UserID() kernel.UUID { return c.userID }
func (c CreateInstallerCommand) TeamID() kernel.UUID { return c.teamID }
func (c CreateInstallerCommand) Name() string { return c.name }
func (c CreateInstallerCommand) Email() *string { return c.email }

func (c *CreateInstallerCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateInstallerCommand) setTeamID(teamID kernel.UUID) error {
	if err := teamID.Validate(); err != nil {
		return err
	}

	c.teamID = teamID
	return nil
}
