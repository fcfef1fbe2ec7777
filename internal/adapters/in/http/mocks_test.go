package http

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/jobupdate"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/team"
	"fieldops/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var testNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAssignOrder struct{ mock.Mock }

func (m *MockAssignOrder) Handle(ctx context.Context, cmd commands.AssignOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockSetOrderStatus struct{ mock.Mock }

func (m *MockSetOrderStatus) Handle(ctx context.Context, cmd commands.SetOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAppendJobUpdate struct{ mock.Mock }

func (m *MockAppendJobUpdate) Handle(
	ctx context.Context, cmd commands.AppendJobUpdateCommand,
) (*jobupdate.JobUpdate, error) {
	args := m.Called(ctx, cmd)
	u, _ := args.Get(0).(*jobupdate.JobUpdate)
	return u, args.Error(1)
}

type MockCreateTeam struct{ mock.Mock }

func (m *MockCreateTeam) Handle(ctx context.Context, cmd commands.CreateTeamCommand) (*team.Team, error) {
	args := m.Called(ctx, cmd)
	t, _ := args.Get(0).(*team.Team)
	return t, args.Error(1)
}

type MockCreateInstaller struct{ mock.Mock }

func (m *MockCreateInstaller) Handle(ctx context.Context, cmd commands.CreateInstallerCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).(queries.OrderView)
	return v, args.Error(1)
}

type MockListOrders struct{ mock.Mock }

func (m *MockListOrders) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).([]queries.OrderView)
	return v, args.Error(1)
}

type MockListJobUpdates struct{ mock.Mock }

func (m *MockListJobUpdates) Handle(
	ctx context.Context, query queries.ListJobUpdatesQuery,
) ([]queries.JobUpdateView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).([]queries.JobUpdateView)
	return v, args.Error(1)
}

type MockListTeams struct{ mock.Mock }

func (m *MockListTeams) Handle(ctx context.Context, query queries.ListTeamsQuery) ([]queries.TeamView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).([]queries.TeamView)
	return v, args.Error(1)
}

type MockGetActor struct{ mock.Mock }

func (m *MockGetActor) Handle(ctx context.Context, query queries.GetActorQuery) (queries.ActorView, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).(queries.ActorView)
	return v, args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

// testAPI is a router wired to mocks, plus a token for a signed-in user.
type testAPI struct {
	echo   *echo.Echo
	tokens SessionTokens

	createOrder     *MockCreateOrder
	assignOrder     *MockAssignOrder
	setOrderStatus  *MockSetOrderStatus
	appendJobUpdate *MockAppendJobUpdate
	createTeam      *MockCreateTeam
	createInstaller *MockCreateInstaller
	getOrder        *MockGetOrder
	listOrders      *MockListOrders
	listJobUpdates  *MockListJobUpdates
	listTeams       *MockListTeams
	actors          *MockGetActor
}

func newTestAPI(t *testing.T, db Pinger) *testAPI {
	t.Helper()
	tokens, err := NewSessionTokens(testSecret, time.Hour)
	require.NoError(t, err)

	api := &testAPI{
		tokens:          tokens,
		createOrder:     new(MockCreateOrder),
		assignOrder:     new(MockAssignOrder),
		setOrderStatus:  new(MockSetOrderStatus),
		appendJobUpdate: new(MockAppendJobUpdate),
		createTeam:      new(MockCreateTeam),
		createInstaller: new(MockCreateInstaller),
		getOrder:        new(MockGetOrder),
		listOrders:      new(MockListOrders),
		listJobUpdates:  new(MockListJobUpdates),
		listTeams:       new(MockListTeams),
		actors:          new(MockGetActor),
	}
	server := NewServer(UseCases{
		CreateOrder:     api.createOrder,
		AssignOrder:     api.assignOrder,
		SetOrderStatus:  api.setOrderStatus,
		AppendJobUpdate: api.appendJobUpdate,
		CreateTeam:      api.createTeam,
		CreateInstaller: api.createInstaller,
		GetOrder:        api.getOrder,
		ListOrders:      api.listOrders,
		ListJobUpdates:  api.listJobUpdates,
		ListTeams:       api.listTeams,
	})
	if db == nil {
		db = stubPinger{}
	}
	registry := prometheus.NewRegistry()
	api.echo = NewRouter(server, RouterConfig{
		Logger:     zerolog.Nop(),
		Tokens:     tokens,
		Actors:     api.actors,
		Database:   db,
		Registerer: registry,
		Gatherer:   registry,
	})
	return api
}

// signIn registers session as resolvable and returns a bearer header value.
func (a *testAPI) signIn(t *testing.T, session queries.ActorView) string {
	t.Helper()
	a.actors.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetActorQuery) bool {
		return q.UserID().IsEqual(session.ID)
	})).Return(session, nil)

	token, err := a.tokens.Issue(session.ID, time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}

func adminSession() queries.ActorView {
	return queries.ActorView{ID: kernel.NewUUID(), Name: "Dispatch", Role: user.Admin}
}

func installerSession(teamID kernel.UUID) queries.ActorView {
	return queries.ActorView{ID: kernel.NewUUID(), Name: "Ines", Role: user.Installer, TeamID: &teamID}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Acme", "1 Main St", "Fit boiler", nil, testNow)
	require.NoError(t, err)
	return o
}

func orderViewOf(o *order.Order) queries.OrderView {
	return queries.OrderView{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		SiteAddress:  o.SiteAddress(),
		Description:  o.Description(),
		Status:       o.Status(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}
