package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/team"
	"fieldops/internal/core/domain/services"
)

// CreateTeamCommandHandler registers teams. Only admins may create them.
type CreateTeamCommandHandler struct {
	uowFactory TeamUoWFactory
	access     services.AccessResolver
}

func NewCreateTeamCommandHandler(uowFactory TeamUoWFactory) CreateTeamCommandHandler {
	return CreateTeamCommandHandler{
		uowFactory: uowFactory,
		access:     services.NewAccessResolver(),
	}
}

func (h CreateTeamCommandHandler) Handle(ctx context.Context, cmd CreateTeamCommand) (*team.Team, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.access.RequireAdmin(cmd.Actor()); err != nil {
		return nil, err
	}

	created, err := team.NewTeam(cmd.TeamID(), cmd.Name(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TeamRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
