package cmd

import (
	"fmt"

	httpadapter "fieldops/internal/adapters/in/http"
	"fieldops/internal/adapters/out/postgres"
	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.SchedulingUoWFactory = FuncSchedulingUoWFactory(func() commands.SchedulingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderLogUoWFactory = FuncOrderLogUoWFactory(func() commands.OrderLogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendJobUpdateCommandHandler() commands.AppendJobUpdateCommandHandler {
	var f commands.OrderLogUoWFactory = FuncOrderLogUoWFactory(func() commands.OrderLogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendJobUpdateCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTeamCommandHandler() commands.CreateTeamCommandHandler {
	var f commands.TeamUoWFactory = FuncTeamUoWFactory(func() commands.TeamUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTeamCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateInstallerCommandHandler() commands.CreateInstallerCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInstallerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListJobUpdatesQueryHandler() queries.ListJobUpdatesQueryHandler {
	return queries.NewListJobUpdatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTeamsQueryHandler() queries.ListTeamsQueryHandler {
	return queries.NewListTeamsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActorQueryHandler() queries.GetActorQueryHandler {
	return queries.NewGetActorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSessionTokens() (httpadapter.SessionTokens, error) {
	return httpadapter.NewSessionTokens(c.config.JWTSecret, c.config.JWTTTL)
}

// CreateRouter wires every handler into the echo router.
func (c *CompositionRoot) CreateRouter(log zerolog.Logger) (*echo.Echo, error) {
	tokens, err := c.CreateSessionTokens()
	if err != nil {
		return nil, err
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}

	server := httpadapter.NewServer(httpadapter.UseCases{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		AssignOrder:     c.CreateAssignOrderCommandHandler(),
		SetOrderStatus:  c.CreateSetOrderStatusCommandHandler(),
		AppendJobUpdate: c.CreateAppendJobUpdateCommandHandler(),
		CreateTeam:      c.CreateCreateTeamCommandHandler(),
		CreateInstaller: c.CreateCreateInstallerCommandHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		ListJobUpdates:  c.CreateListJobUpdatesQueryHandler(),
		ListTeams:       c.CreateListTeamsQueryHandler(),
	})

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Logger:   log,
		Tokens:   tokens,
		Actors:   c.CreateGetActorQueryHandler(),
		Database: sqlDB,
	}), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSchedulingUoWFactory func() commands.SchedulingUoW

func (f FuncSchedulingUoWFactory) Create() commands.SchedulingUoW {
	return f()
}

type FuncOrderLogUoWFactory func() commands.OrderLogUoW

func (f FuncOrderLogUoWFactory) Create() commands.OrderLogUoW {
	return f()
}

type FuncTeamUoWFactory func() commands.TeamUoW

func (f FuncTeamUoWFactory) Create() commands.TeamUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}
