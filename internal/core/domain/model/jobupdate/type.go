package jobupdate

import (
	"fmt"
	"strings"

	"fieldops/internal/pkg/errs"
)

// Type classifies a field report.
type Type string

const (
	Progress Type = "PROGRESS"
	Blocker  Type = "BLOCKER"
	Complete Type = "COMPLETE"
	Note     Type = "NOTE"
)

// ParseType accepts the wire name in any case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	switch t {
	case Progress, Blocker, Complete, Note:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid update type", string(t)))
	}
}

func (t Type) String() string {
	return string(t)
}
