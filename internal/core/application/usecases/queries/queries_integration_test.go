package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fieldops/internal/adapters/out/postgres"
	"fieldops/internal/adapters/out/postgres/pgtest"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/jobupdate"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/team"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var baseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

// QueriesIntegrationTestSuite seeds two teams, an admin and three orders:
//
//	unassigned  created first, NEW
//	northJob    assigned to north, IN_PROGRESS
//	southJob    assigned to south, created last
type QueriesIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory

	admin          *user.User
	north, south   *team.Team
	northInstaller *user.User
	southInstaller *user.User
	unassigned     *order.Order
	northJob       *order.Order
	southJob       *order.Order
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.Reset(ctx))
	uow := suite.factory.Create()

	admin, err := user.NewAdmin(kernel.NewUUID(), "Dispatch", nil, baseTime)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, admin))
	suite.admin = admin

	suite.north, suite.northInstaller = suite.seedTeam("North", ptr("north@example.com"), baseTime)
	suite.south, suite.southInstaller = suite.seedTeam("South", nil, baseTime.Add(time.Minute))

	suite.unassigned = suite.seedOrder("Acme", baseTime.Add(time.Hour))
	suite.northJob = suite.seedOrder("Birch & Co", baseTime.Add(2*time.Hour))
	suite.southJob = suite.seedOrder("Cobalt", baseTime.Add(3*time.Hour))

	suite.assign(suite.northJob, suite.north, suite.northInstaller, "2024-03-10", 3)
	suite.Require().NoError(suite.northJob.SetStatus(order.InProgress, baseTime.Add(4*time.Hour)))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, suite.northJob))
	suite.assign(suite.southJob, suite.south, suite.southInstaller, "2024-03-12", 1)
}

func (suite *QueriesIntegrationTestSuite) seedTeam(
	name string, email *string, createdAt time.Time,
) (*team.Team, *user.User) {
	ctx := context.Background()
	uow := suite.factory.Create()

	t, err := team.NewTeam(kernel.NewUUID(), name, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TeamRepository().Add(ctx, t))

	installer, err := user.NewInstaller(kernel.NewUUID(), name+" lead", email, t.ID(), createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.UserRepository().Add(ctx, installer))
	suite.Require().NoError(t.LinkInstaller(installer.ID()))
	suite.Require().NoError(uow.TeamRepository().Update(ctx, t))

	return t, installer
}

func (suite *QueriesIntegrationTestSuite) seedOrder(customer string, createdAt time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), customer, "12 Quarry Rd", "Fit heat pump", nil, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) assign(o *order.Order, t *team.Team, installer *user.User, date string, days int) {
	schedule, err := order.ParseSchedule(date, days)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Assign(order.Assignment{
		TeamID:      t.ID(),
		InstallerID: installer.ID(),
		Schedule:    schedule,
	}, baseTime.Add(4*time.Hour)))
	suite.Require().NoError(suite.factory.Create().OrderRepository().Update(context.Background(), o))
}

func (suite *QueriesIntegrationTestSuite) addUpdate(o *order.Order, author *user.User, message string, at time.Time) {
	u, err := jobupdate.NewJobUpdate(kernel.NewUUID(), o.ID(), author.ID(), jobupdate.Progress, message, nil, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().JobUpdateRepository().Add(context.Background(), u))
}

func (suite *QueriesIntegrationTestSuite) getOrder(actor user.Actor, id kernel.UUID) (queries.OrderView, error) {
	q, err := queries.NewGetOrderQuery(actor, id)
	suite.Require().NoError(err)
	return queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), q)
}

func (suite *QueriesIntegrationTestSuite) listOrders(
	actor user.Actor, status *string, teamID *kernel.UUID,
) ([]queries.OrderView, error) {
	q, err := queries.NewListOrdersQuery(actor, status, teamID)
	suite.Require().NoError(err)
	return queries.NewListOrdersQueryHandler(suite.database.DB).Handle(context.Background(), q)
}

func orderIDs(views []queries.OrderView) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_ResolvesNamesAndSchedule() {
	view, err := suite.getOrder(suite.admin.Actor(), suite.northJob.ID())
	suite.Require().NoError(err)

	suite.Equal("Birch & Co", view.CustomerName)
	suite.Equal(order.InProgress, view.Status)
	suite.Require().NotNil(view.AssignedTeamName)
	suite.Equal("North", *view.AssignedTeamName)
	suite.Require().NotNil(view.AssignedUserName)
	suite.Equal("North lead", *view.AssignedUserName)
	suite.Require().NotNil(view.ScheduledDate)
	suite.Equal("2024-03-10", view.ScheduledDate.String())
	suite.Require().NotNil(view.EstimatedDays)
	suite.Equal(3, *view.EstimatedDays)
	suite.True(baseTime.Add(2 * time.Hour).Equal(view.CreatedAt))
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_UnassignedHasNoNames() {
	view, err := suite.getOrder(suite.admin.Actor(), suite.unassigned.ID())
	suite.Require().NoError(err)

	suite.Equal(order.New, view.Status)
	suite.Nil(view.AssignedTeamID)
	suite.Nil(view.AssignedTeamName)
	suite.Nil(view.ScheduledDate)
	suite.Nil(view.EstimatedDays)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_Access() {
	_, err := suite.getOrder(suite.northInstaller.Actor(), suite.northJob.ID())
	suite.NoError(err)

	_, err = suite.getOrder(suite.southInstaller.Actor(), suite.northJob.ID())
	suite.ErrorIs(err, errs.ErrAccessDenied)

	_, err = suite.getOrder(suite.northInstaller.Actor(), suite.unassigned.ID())
	suite.ErrorIs(err, errs.ErrAccessDenied)

	_, err = suite.getOrder(suite.admin.Actor(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.getOrder(user.Anonymous(), kernel.NewUUID())
	suite.ErrorIs(err, errs.ErrUnauthenticated)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_AdminSeesAllNewestFirst() {
	views, err := suite.listOrders(suite.admin.Actor(), nil, nil)
	suite.Require().NoError(err)

	suite.Equal(
		[]kernel.UUID{suite.southJob.ID(), suite.northJob.ID(), suite.unassigned.ID()},
		orderIDs(views),
	)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Filters() {
	views, err := suite.listOrders(suite.admin.Actor(), ptr("ASSIGNED"), nil)
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{suite.southJob.ID()}, orderIDs(views))

	northID := suite.north.ID()
	views, err = suite.listOrders(suite.admin.Actor(), nil, &northID)
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{suite.northJob.ID()}, orderIDs(views))

	views, err = suite.listOrders(suite.admin.Actor(), ptr("NEW"), &northID)
	suite.Require().NoError(err)
	suite.Empty(views)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_InstallerScopeIsForced() {
	views, err := suite.listOrders(suite.northInstaller.Actor(), nil, nil)
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{suite.northJob.ID()}, orderIDs(views))

	southID := suite.south.ID()
	views, err = suite.listOrders(suite.northInstaller.Actor(), nil, &southID)
	suite.Require().NoError(err)
	suite.Empty(views)

	_, err = suite.listOrders(user.Anonymous(), nil, nil)
	suite.ErrorIs(err, errs.ErrUnauthenticated)
}

func (suite *QueriesIntegrationTestSuite) TestListJobUpdates() {
	suite.addUpdate(suite.northJob, suite.northInstaller, "arrived on site", baseTime.Add(5*time.Hour))
	suite.addUpdate(suite.northJob, suite.admin, "customer called", baseTime.Add(6*time.Hour))
	suite.addUpdate(suite.southJob, suite.southInstaller, "other order", baseTime.Add(7*time.Hour))

	handler := queries.NewListJobUpdatesQueryHandler(suite.database.DB)
	q, err := queries.NewListJobUpdatesQuery(suite.northInstaller.Actor(), suite.northJob.ID())
	suite.Require().NoError(err)

	updates, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Require().Len(updates, 2)
	suite.Equal("customer called", updates[0].Message)
	suite.Require().NotNil(updates[0].AuthorName)
	suite.Equal("Dispatch", *updates[0].AuthorName)
	suite.Equal("arrived on site", updates[1].Message)
	suite.Equal(jobupdate.Progress, updates[1].Type)
	suite.True(suite.northJob.ID().IsEqual(updates[1].OrderID))
}

func (suite *QueriesIntegrationTestSuite) TestListJobUpdates_Errors() {
	handler := queries.NewListJobUpdatesQueryHandler(suite.database.DB)

	q, err := queries.NewListJobUpdatesQuery(suite.southInstaller.Actor(), suite.northJob.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), q)
	suite.ErrorIs(err, errs.ErrAccessDenied)

	q, err = queries.NewListJobUpdatesQuery(suite.admin.Actor(), kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), q)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListTeams() {
	handler := queries.NewListTeamsQueryHandler(suite.database.DB)

	teams, err := handler.Handle(context.Background(), queries.NewListTeamsQuery(suite.admin.Actor()))
	suite.Require().NoError(err)
	suite.Require().Len(teams, 2)
	suite.Equal("South", teams[0].Name)
	suite.Equal("North", teams[1].Name)
	suite.Require().NotNil(teams[1].Installer)
	suite.True(suite.northInstaller.ID().IsEqual(teams[1].Installer.ID))
	suite.Require().NotNil(teams[1].Installer.Email)
	suite.Equal("north@example.com", *teams[1].Installer.Email)

	_, err = handler.Handle(context.Background(), queries.NewListTeamsQuery(suite.northInstaller.Actor()))
	suite.ErrorIs(err, errs.ErrAccessDenied)
}

func (suite *QueriesIntegrationTestSuite) TestGetActor() {
	handler := queries.NewGetActorQueryHandler(suite.database.DB)

	q, err := queries.NewGetActorQuery(suite.northInstaller.ID())
	suite.Require().NoError(err)
	view, err := handler.Handle(context.Background(), q)
	suite.Require().NoError(err)
	suite.Equal(user.Installer, view.Role)
	suite.Require().NotNil(view.TeamName)
	suite.Equal("North", *view.TeamName)
	suite.True(view.Actor().IsInstaller())

	q, err = queries.NewGetActorQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(context.Background(), q)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
