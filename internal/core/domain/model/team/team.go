package team

import (
	"errors"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
)

var (
	ErrTeamIsNotConstructed = errors.New("Team must be created via NewTeam or RestoreTeam")

	// ErrTeamHasNoInstaller is returned when work is assigned to a crew without a lead.
	ErrTeamHasNoInstaller = errs.NewValueIsInvalidErrorWithCause(
		"teamId", errors.New("team has no installer"),
	)
)

// Team is a named crew with an optional linked installer.
type Team struct {
	id              kernel.UUID
	name            string
	installerUserID *kernel.UUID
	createdAt       time.Time
	isConstructed   bool
}

// NewTeam creates a crew without an installer.
func NewTeam(id kernel.UUID, name string, now time.Time) (*Team, error) {
	return RestoreTeam(id, name, nil, now)
}

// RestoreTeam rebuilds a team from persistence.
func RestoreTeam(id kernel.UUID, name string, installerUserID *kernel.UUID, createdAt time.Time) (*Team, error) {
	t := &Team{createdAt: createdAt.UTC(), isConstructed: true}
	if err := errors.Join(t.setID(id), t.setName(name)); err != nil {
		return nil, err
	}
	if installerUserID != nil {
		if err := installerUserID.Validate(); err != nil {
			return nil, err
		}
		link := *installerUserID
		t.installerUserID = &link
	}
	return t, nil
}

func (t *Team) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTeamIsNotConstructed
	}
	return nil
}

func (t *Team) ID() kernel.UUID { return t.id }
func (t *Team) Name() string { return t.name }
func (t *Team) CreatedAt() time.Time { return t.createdAt }

// InstallerUserID returns the linked installer, nil when none is linked.
func (t *Team) InstallerUserID() *kernel.UUID {
	return t.installerUserID
}

func (t *Team) HasInstaller() bool {
	return t.installerUserID != nil
}

// RequireInstaller returns the linked installer or ErrTeamHasNoInstaller.
func (t *Team) RequireInstaller() (kernel.UUID, error) {
	if t.installerUserID == nil {
		return kernel.UUID{}, ErrTeamHasNoInstaller
	}
	return *t.installerUserID, nil
}

// LinkInstaller links userID as the team's installer. A team that already has
// one fails with a conflict; links are never replaced.
func (t *Team) LinkInstaller(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if t.installerUserID != nil {
		return errs.NewConflictError("team", "team already has an installer")
	}
	t.installerUserID = &userID
	return nil
}

func (t *Team) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Team) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}
