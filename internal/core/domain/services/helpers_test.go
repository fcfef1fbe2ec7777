package services_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/model/team"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, customer string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customer, "1 Main St", "Install panels", nil, now)
	require.NoError(t, err)
	return o
}

func newTeamWithInstaller(t *testing.T) (*team.Team, kernel.UUID) {
	t.Helper()
	tm, err := team.NewTeam(kernel.NewUUID(), "North Crew", now)
	require.NoError(t, err)
	installer := kernel.NewUUID()
	require.NoError(t, tm.LinkInstaller(installer))
	return tm, installer
}

func schedule(t *testing.T, date string, days int) order.Schedule {
	t.Helper()
	s, err := order.ParseSchedule(date, days)
	require.NoError(t, err)
	return s
}

func bookedOrder(t *testing.T, tm *team.Team, installer kernel.UUID, customer, date string, days int) *order.Order {
	t.Helper()
	o := newOrder(t, customer)
	require.NoError(t, o.Assign(order.Assignment{
		TeamID:      tm.ID(),
		InstallerID: installer,
		Schedule:    schedule(t, date, days),
	}, now))
	return o
}
