// Package user models the people who act on orders.
//
// The package includes:
//   - User: a persisted identity with a Role and an optional team membership
//   - Role: ADMIN (dispatcher) or INSTALLER (field crew lead)
//   - Actor: the resolved identity of a request, a tagged variant of
//     anonymous, admin, or installer-with-team
//
// Roles are fixed at creation. Admins are implicitly authorized on every
// order; installers are authorized through team membership or direct assignment.
package user
