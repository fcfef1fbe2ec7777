package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	postgres_adapter "fieldops/internal/adapters/out/postgres"
	"fieldops/internal/adapters/out/postgres/pgtest"
	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/team"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type schedulingFactory struct{ f ports.UnitOfWorkFactory }

func (s schedulingFactory) Create() commands.SchedulingUoW { return s.f.Create() }

type orderLogFactory struct{ f ports.UnitOfWorkFactory }

func (s orderLogFactory) Create() commands.OrderLogUoW { return s.f.Create() }

var now = time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite exercises transactions across repositories
// against a real postgres.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

// seedTeam stores a team with a linked installer, without a transaction.
func (suite *UnitOfWorkIntegrationTestSuite) seedTeam(name string) (*team.Team, *user.User) {
	ctx := context.Background()
	uow := suite.factory.Create()

	t, err := team.NewTeam(kernel.NewUUID(), name, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TeamRepository().Add(ctx, t))

	installer, err := user.NewInstaller(kernel.NewUUID(), name+" lead", nil, t.ID(), now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, installer))
	suite.Require().NoError(t.LinkInstaller(installer.ID()))
	suite.Require().NoError(uow.TeamRepository().Update(ctx, t))

	return t, installer
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOrder(customer string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), customer, "1 Main St", "Install", nil, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(table string) int64 {
	var count int64
	suite.Require().NoError(suite.database.DB.Table(table).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin does not nest")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsAllRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	t, err := team.NewTeam(kernel.NewUUID(), "North", now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TeamRepository().Add(ctx, t))
	o, err := order.NewOrder(kernel.NewUUID(), "Acme", "1 Main St", "Install", nil, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Zero(suite.countRows("teams"))
	suite.Zero(suite.countRows("orders"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsEveryRepository() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	t, err := team.NewTeam(kernel.NewUUID(), "North", now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TeamRepository().Add(ctx, t))
	o, err := order.NewOrder(kernel.NewUUID(), "Acme", "1 Main St", "Install", nil, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countRows("teams"))
	suite.Equal(int64(1), suite.countRows("orders"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAssignment_ScenarioFromCalendar() {
	ctx := context.Background()
	t, installer := suite.seedTeam("Team X")
	first := suite.seedOrder("First")
	second := suite.seedOrder("Second")
	admin := user.NewAdminActor(kernel.NewUUID())
	handler := commands.NewAssignOrderCommandHandler(schedulingFactory{suite.factory})

	assign := func(o *order.Order, date string, days int) (*order.Order, error) {
		cmd, err := commands.NewAssignOrderCommand(admin, o.ID(), t.ID(), date, days)
		suite.Require().NoError(err)
		return handler.Handle(ctx, cmd)
	}

	assigned, err := assign(first, "2024-03-01", 3)
	suite.Require().NoError(err)
	suite.True(assigned.AssignedUserID().IsEqual(installer.ID()))

	_, err = assign(second, "2024-03-03", 2)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	var conflict *order.ScheduleConflictError
	suite.Require().True(errors.As(err, &conflict))
	suite.True(conflict.OrderID.IsEqual(first.ID()))

	_, err = assign(second, "2024-03-04", 2)
	suite.Require().NoError(err)

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, second.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, stored.Status())
	suite.Equal("2024-03-04", stored.Schedule().Start().String())
	suite.Equal(2, stored.Schedule().EstimatedDays())
	suite.True(stored.AssignedTeamID().IsEqual(t.ID()))
	suite.True(stored.AssignedUserID().IsEqual(installer.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAssignment_ConcurrentOverlapsSerialize() {
	ctx := context.Background()
	t, _ := suite.seedTeam("Team X")
	admin := user.NewAdminActor(kernel.NewUUID())
	handler := commands.NewAssignOrderCommandHandler(schedulingFactory{suite.factory})

	const workers = 6
	orders := make([]*order.Order, workers)
	for i := range orders {
		orders[i] = suite.seedOrder("Concurrent")
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for _, o := range orders {
		wg.Add(1)
		go func(o *order.Order) {
			defer wg.Done()
			cmd, err := commands.NewAssignOrderCommand(admin, o.ID(), t.ID(), "2024-03-01", 3)
			if err != nil {
				return
			}
			_, err = handler.Handle(ctx, cmd)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, errs.ErrConflict):
				conflicts++
			}
		}(o)
	}
	wg.Wait()

	suite.Equal(1, succeeded)
	suite.Equal(workers-1, conflicts)

	booked, err := suite.factory.Create().OrderRepository().GetBookedByTeam(ctx, t.ID())
	suite.Require().NoError(err)
	suite.Len(booked, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBlockedStatusWritesBlockerAtomically() {
	ctx := context.Background()
	t, installer := suite.seedTeam("Team X")
	o := suite.seedOrder("Acme")
	admin := user.NewAdminActor(kernel.NewUUID())

	assignCmd, err := commands.NewAssignOrderCommand(admin, o.ID(), t.ID(), "2024-03-01", 1)
	suite.Require().NoError(err)
	_, err = commands.NewAssignOrderCommandHandler(schedulingFactory{suite.factory}).Handle(ctx, assignCmd)
	suite.Require().NoError(err)

	handler := commands.NewSetOrderStatusCommandHandler(orderLogFactory{suite.factory})

	missing, err := commands.NewSetOrderStatusCommand(installer.Actor(), o.ID(), "BLOCKED", " ")
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
	suite.Zero(suite.countRows("job_updates"))

	blocked, err := commands.NewSetOrderStatusCommand(installer.Actor(), o.ID(), "BLOCKED", "No roof access")
	suite.Require().NoError(err)
	updated, err := handler.Handle(ctx, blocked)
	suite.Require().NoError(err)
	suite.Equal(order.Blocked, updated.Status())

	var messages []string
	suite.Require().NoError(suite.database.DB.Table("job_updates").
		Where("order_id = ? AND type = ?", o.ID().Bytes(), "BLOCKER").
		Pluck("message", &messages).Error)
	suite.Equal([]string{"No roof access"}, messages)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
