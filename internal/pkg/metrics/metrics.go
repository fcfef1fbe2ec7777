// Package metrics defines the domain counters exported on /metrics.
//
// Counters register with the default Prometheus registry at init, so they are
// served by the same handler as the HTTP request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fieldops"

// OrdersCreatedTotal counts orders accepted by createOrder.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of installation orders created.",
	},
)

// AssignmentsTotal counts assignment attempts that reached the team calendar.
// Label:
//   - result: "assigned" or "conflict"
var AssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_total",
		Help:      "Total number of team assignments, by outcome.",
	},
	[]string{"result"},
)

// StatusTransitionsTotal counts successful status changes.
// Label:
//   - status: the target status wire name (e.g. "BLOCKED")
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of order status changes, by target status.",
	},
	[]string{"status"},
)

// JobUpdatesTotal counts appended field updates, including the BLOCKER
// entries written by status changes.
// Label:
//   - type: PROGRESS, BLOCKER, COMPLETE or NOTE
var JobUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_updates_total",
		Help:      "Total number of job updates appended, by type.",
	},
	[]string{"type"},
)

const (
	AssignmentResultAssigned = "assigned"
	AssignmentResultConflict = "conflict"
)
