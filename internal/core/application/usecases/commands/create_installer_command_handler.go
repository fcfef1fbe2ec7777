package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/core/domain/services"
)

// CreateInstallerCommandHandler creates installers. The team row is locked
// while the link is written; the unique index on the installer column backs
// the check if two teams race for one user.
type CreateInstallerCommandHandler struct {
	uowFactory StaffUoWFactory
	access     services.AccessResolver
}

func NewCreateInstallerCommandHandler(uowFactory StaffUoWFactory) CreateInstallerCommandHandler {
	return CreateInstallerCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessResolver(),
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown team and with
// errs.ErrConflict when the team already has an installer.
func (h CreateInstallerCommandHandler) Handle(ctx context.Context, cmd CreateInstallerCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.access.RequireAdmin(cmd.Actor()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	teamRepo := uow.TeamRepository()

	t, err := teamRepo.GetForUpdate(ctx, cmd.TeamID())
	if err != nil {
		return nil, err
	}

	installer, err := user.NewInstaller(cmd.UserID(), cmd.Name(), cmd.Email(), t.ID(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = t.LinkInstaller(installer.ID()); err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Add(ctx, installer); err != nil {
		return nil, err
	}

	if err = teamRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return installer, nil
}
