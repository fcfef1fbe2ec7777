package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewAdmin, NewInstaller or RestoreUser")

var fieldValidator = validator.New()

// User is an identity that can act on orders.
//
// Invariants:
//   - name is non-blank
//   - email, when present, is a valid address
//   - installers belong to exactly one team, admins may belong to none
type User struct {
	id            kernel.UUID
	name          string
	email         *string
	role          Role
	teamID        *kernel.UUID
	createdAt     time.Time
	isConstructed bool
}

// NewAdmin creates a dispatcher account.
func NewAdmin(id kernel.UUID, name string, email *string, now time.Time) (*User, error) {
	return newUser(id, name, email, Admin, nil, now)
}

// NewInstaller creates an installer that belongs to teamID.
func NewInstaller(id kernel.UUID, name string, email *string, teamID kernel.UUID, now time.Time) (*User, error) {
	if err := teamID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("teamId", err)
	}
	return newUser(id, name, email, Installer, &teamID, now)
}

// RestoreUser rebuilds a user from persistence, re-checking its invariants.
func RestoreUser(
	id kernel.UUID, name string, email *string, role Role, teamID *kernel.UUID, createdAt time.Time,
) (*User, error) {
	if role == Installer && teamID == nil {
		return nil, errs.NewValueIsRequiredError("teamId")
	}
	return newUser(id, name, email, role, teamID, createdAt)
}

func newUser(
	id kernel.UUID, name string, email *string, role Role, teamID *kernel.UUID, now time.Time,
) (*User, error) {
	u := &User{createdAt: now.UTC(), teamID: teamID, isConstructed: true}
	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() *string { return u.email }
func (u *User) Role() Role { return u.role }
func (u *User) TeamID() *kernel.UUID { return u.teamID }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) IsAdmin() bool { return u.role == Admin }

// Actor returns the request identity this user acts as.
func (u *User) Actor() Actor {
	if u.role == Admin {
		return NewAdminActor(u.id)
	}
	return NewInstallerActor(u.id, u.teamID)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email *string) error {
	if email == nil || strings.TrimSpace(*email) == "" {
		u.email = nil
		return nil
	}
	addr := strings.TrimSpace(*email)
	if err := fieldValidator.Var(addr, "email"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", addr))
	}
	u.email = &addr
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
