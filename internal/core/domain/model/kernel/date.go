package kernel

import (
	"fmt"
	"strings"
	"time"

	"fieldops/internal/pkg/errs"
)

// DateLayout is the wire and display form of a Date.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("date must be created via NewDate, ParseDate or DateFromTime")

// Date is a calendar day. Scheduling works at whole-day granularity, so Date
// carries no time of day and no zone: it is stored as midnight UTC.
type Date struct {
	t time.Time
}

// NewDate builds a date from its parts. Out-of-range parts are rejected rather
// than normalised (2024-02-30 is an error, not March 1st).
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date", fmt.Errorf("%04d-%02d-%02d is not a calendar date", year, int(month), day),
		)
	}
	return Date{t: t}, nil
}

// ParseDate accepts "2006-01-02" or an RFC 3339 timestamp. For timestamps only
// the calendar day in UTC is kept.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errs.NewValueIsRequiredError("date")
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateFromTime(t), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date", fmt.Errorf("%q is neither YYYY-MM-DD nor RFC 3339", s),
		)
	}
	return DateFromTime(t), nil
}

// DateFromTime truncates t to its calendar day in UTC.
func DateFromTime(t time.Time) Date {
	u := t.UTC()
	return Date{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
