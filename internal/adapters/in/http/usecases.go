package http

import (
	"context"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/jobupdate"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/team"
	"fieldops/internal/core/domain/model/user"
)

// The server depends on these narrow views of the command and query
// handlers so tests can substitute each one.

type CreateOrderUseCase interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type AssignOrderUseCase interface {
	Handle(ctx context.Context, cmd commands.AssignOrderCommand) (*order.Order, error)
}

type SetOrderStatusUseCase interface {
	Handle(ctx context.Context, cmd commands.SetOrderStatusCommand) (*order.Order, error)
}

type AppendJobUpdateUseCase interface {
	Handle(ctx context.Context, cmd commands.AppendJobUpdateCommand) (*jobupdate.JobUpdate, error)
}

type CreateTeamUseCase interface {
	Handle(ctx context.Context, cmd commands.CreateTeamCommand) (*team.Team, error)
}

type CreateInstallerUseCase interface {
	Handle(ctx context.Context, cmd commands.CreateInstallerCommand) (*user.User, error)
}

type GetOrderUseCase interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type ListOrdersUseCase interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
}

type ListJobUpdatesUseCase interface {
	Handle(ctx context.Context, query queries.ListJobUpdatesQuery) ([]queries.JobUpdateView, error)
}

type ListTeamsUseCase interface {
	Handle(ctx context.Context, query queries.ListTeamsQuery) ([]queries.TeamView, error)
}

type GetActorUseCase interface {
	Handle(ctx context.Context, query queries.GetActorQuery) (queries.ActorView, error)
}

// UseCases groups the handlers a Server dispatches to.
type UseCases struct {
	CreateOrder     CreateOrderUseCase
	AssignOrder     AssignOrderUseCase
	SetOrderStatus  SetOrderStatusUseCase
	AppendJobUpdate AppendJobUpdateUseCase
	CreateTeam      CreateTeamUseCase
	CreateInstaller CreateInstallerUseCase
	GetOrder        GetOrderUseCase
	ListOrders      ListOrdersUseCase
	ListJobUpdates  ListJobUpdatesUseCase
	ListTeams       ListTeamsUseCase
}
