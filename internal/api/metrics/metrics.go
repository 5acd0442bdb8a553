// Package metrics defines and registers all custom Prometheus metrics for the
// job records API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobrecords"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthEventsTotal counts gateway outcomes.
// Labels:
//   - kind: "register", "login" or "authenticate"
//   - outcome: e.g. "success", "wrong_password", "token_expired"
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication gateway outcomes.",
	},
	[]string{"kind", "outcome"},
)

// AuthAuditDroppedTotal counts audit events discarded because a worker channel was full.
var AuthAuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_audit_dropped_total",
		Help:      "Total number of audit events dropped due to a full dispatcher queue.",
	},
)

// AuthAuditErrorsTotal counts audit events that could not be persisted.
var AuthAuditErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_audit_errors_total",
		Help:      "Total number of audit events that failed to persist.",
	},
)

// AuthAuditQueueDepth tracks the number of audit events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuthAuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "auth_audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// PasswordHashDuration measures the cost of one hash or verify call.
// Label:
//   - op: "hash" or "verify"
var PasswordHashDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing and verification.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
	[]string{"op"},
)

// RateLimitedTotal counts requests rejected by the per-IP limiter.
// Label:
//   - route: the matched route path (e.g. "/token")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the per-IP rate limiter.",
	},
	[]string{"route"},
)

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsCreatedTotal counts newly created job records.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job records created.",
	},
)
