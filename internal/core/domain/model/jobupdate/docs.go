// Package jobupdate models the append-only field log of an order.
//
// A JobUpdate is immutable once created: the package exposes no mutators and
// the store exposes no update or delete for it.
package jobupdate
