package commands_test

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/jobupdate"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/team"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetBookedByTeam(ctx context.Context, teamID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTeamRepository struct{ mock.Mock }

func (m *MockTeamRepository) Add(ctx context.Context, t *team.Team) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTeamRepository) Update(ctx context.Context, t *team.Team) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTeamRepository) Get(ctx context.Context, id kernel.UUID) (*team.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*team.Team), args.Error(1)
}

func (m *MockTeamRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*team.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*team.Team), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockJobUpdateRepository struct{ mock.Mock }

func (m *MockJobUpdateRepository) Add(ctx context.Context, u *jobupdate.JobUpdate) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TeamRepository() ports.TeamRepository {
	args := m.Called()
	return args.Get(0).(ports.TeamRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) JobUpdateRepository() ports.JobUpdateRepository {
	args := m.Called()
	return args.Get(0).(ports.JobUpdateRepository)
}

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type schedulingUoWFactory struct{ uow *MockUoW }

func (f schedulingUoWFactory) Create() commands.SchedulingUoW { return f.uow }

type orderLogUoWFactory struct{ uow *MockUoW }

func (f orderLogUoWFactory) Create() commands.OrderLogUoW { return f.uow }

type teamUoWFactory struct{ uow *MockUoW }

func (f teamUoWFactory) Create() commands.TeamUoW { return f.uow }

type staffUoWFactory struct{ uow *MockUoW }

func (f staffUoWFactory) Create() commands.StaffUoW { return f.uow }

var testNow = time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC)

func adminActor() user.Actor {
	return user.NewAdminActor(kernel.NewUUID())
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Acme", "1 Main St", "Install panels", nil, testNow)
	require.NoError(t, err)
	return o
}

func newTestTeam(t *testing.T, withInstaller bool) (*team.Team, kernel.UUID) {
	t.Helper()
	tm, err := team.NewTeam(kernel.NewUUID(), "North Crew", testNow)
	require.NoError(t, err)
	installer := kernel.NewUUID()
	if withInstaller {
		require.NoError(t, tm.LinkInstaller(installer))
	}
	return tm, installer
}

func assignTestOrder(t *testing.T, o *order.Order, tm *team.Team, date string, days int) {
	t.Helper()
	installer, err := tm.RequireInstaller()
	require.NoError(t, err)
	s, err := order.ParseSchedule(date, days)
	require.NoError(t, err)
	require.NoError(t, o.Assign(order.Assignment{TeamID: tm.ID(), InstallerID: installer, Schedule: s}, testNow))
}
