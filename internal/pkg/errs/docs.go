// Package errs provides standardized error types for the field operations service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors into the outcome classes callers branch on:
//   - ErrUnauthenticated: no acting identity was resolved
//   - ErrAccessDenied: the identity may not touch the target
//   - ErrObjectNotFound: an order, team or user does not exist
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: validation failures
//   - ErrConflict: the write would break a uniqueness or scheduling rule
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Anything that does not unwrap to one of the sentinels is an internal failure
// (store or transaction error) and is the only class worth operator attention.
package errs
