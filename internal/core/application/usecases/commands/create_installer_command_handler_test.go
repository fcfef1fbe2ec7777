package commands_test

import (
	"testing"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/user"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateInstallerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tm, _ := newTestTeam(t, false)
	userID := kernel.NewUUID()
	email := "ivan@example.com"

	cmd, err := commands.NewCreateInstallerCommand(adminActor(), userID, tm.ID(), "Ivan", &email)
	require.NoError(t, err)

	teamRepo := new(MockTeamRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TeamRepository").Return(teamRepo).Once(),
		teamRepo.On("GetForUpdate", ctx, tm.ID()).Return(tm, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", ctx, mock.MatchedBy(func(u *user.User) bool {
			return u.ID().IsEqual(userID) && u.Role() == user.Installer
		})).Return(nil).Once(),
		teamRepo.On("Update", ctx, tm).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	installer, err := commands.NewCreateInstallerCommandHandler(staffUoWFactory{uow}).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Ivan", installer.Name())
	assert.True(t, installer.TeamID().IsEqual(tm.ID()))
	assert.True(t, tm.InstallerUserID().IsEqual(userID))
	uow.AssertExpectations(t)
	teamRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestCreateInstallerCommandHandler_Handle_TeamAlreadyHasInstaller(t *testing.T) {
	ctx := t.Context()
	tm, existing := newTestTeam(t, true)

	cmd, err := commands.NewCreateInstallerCommand(adminActor(), kernel.NewUUID(), tm.ID(), "Second", nil)
	require.NoError(t, err)

	teamRepo := new(MockTeamRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TeamRepository").Return(teamRepo).Once()
	teamRepo.On("GetForUpdate", ctx, tm.ID()).Return(tm, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewCreateInstallerCommandHandler(staffUoWFactory{uow}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.True(t, tm.InstallerUserID().IsEqual(existing))
	uow.AssertNotCalled(t, "UserRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateInstallerCommandHandler_Handle_TeamNotFound(t *testing.T) {
	ctx := t.Context()
	teamID := kernel.NewUUID()
	cmd, err := commands.NewCreateInstallerCommand(adminActor(), kernel.NewUUID(), teamID, "Ivan", nil)
	require.NoError(t, err)

	teamRepo := new(MockTeamRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TeamRepository").Return(teamRepo).Once()
	teamRepo.On("GetForUpdate", ctx, teamID).Return(nil, errs.NewObjectNotFoundError("team", teamID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewCreateInstallerCommandHandler(staffUoWFactory{uow}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateInstallerCommandHandler_Handle_InvalidEmail(t *testing.T) {
	ctx := t.Context()
	tm, _ := newTestTeam(t, false)
	email := "not an email"
	cmd, err := commands.NewCreateInstallerCommand(adminActor(), kernel.NewUUID(), tm.ID(), "Ivan", &email)
	require.NoError(t, err)

	teamRepo := new(MockTeamRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TeamRepository").Return(teamRepo).Once()
	teamRepo.On("GetForUpdate", ctx, tm.ID()).Return(tm, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err = commands.NewCreateInstallerCommandHandler(staffUoWFactory{uow}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.False(t, tm.HasInstaller())
}

func TestCreateInstallerCommandHandler_Handle_RequiresAdmin(t *testing.T) {
	teamID := kernel.NewUUID()
	cmd, err := commands.NewCreateInstallerCommand(
		user.NewInstallerActor(kernel.NewUUID(), &teamID), kernel.NewUUID(), teamID, "Ivan", nil,
	)
	require.NoError(t, err)
	uow := new(MockUoW)

	_, err = commands.NewCreateInstallerCommandHandler(staffUoWFactory{uow}).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}
