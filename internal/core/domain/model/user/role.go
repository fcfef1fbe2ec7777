package user

import (
	"fmt"

	"fieldops/internal/pkg/errs"
)

// Role decides the authorization rule applied to a user.
type Role string

const (
	Admin     Role = "ADMIN"
	Installer Role = "INSTALLER"
)

func (r Role) Validate() error {
	switch r {
	case Admin, Installer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
