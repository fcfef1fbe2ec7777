// Package pgerrors classifies postgres driver errors into domain errors.
package pgerrors

import (
	"errors"

	"fieldops/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is SQLSTATE 23505.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// ConstraintName returns the violated constraint, or "" when err is not a
// postgres error.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// AsConflict turns unique violations into errs.ErrConflict for resource and
// returns every other error unchanged.
func AsConflict(err error, resource, reason string) error {
	if IsUniqueViolation(err) {
		return errs.NewConflictError(resource, reason)
	}
	return err
}
