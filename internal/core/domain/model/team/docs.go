// Package team models field crews, the unit of scheduling.
//
// A Team has at most one linked installer. The link is set once, when the
// installer account is created, and no operation clears or replaces it.
package team
