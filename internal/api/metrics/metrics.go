// Package metrics defines the custom Prometheus collectors of the catalog API.
// It is the single source of truth for metric names, labels and help strings.
//
// Collectors register with the default registry on package init (promauto), so
// they show up on /metrics next to the echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog_api"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected", "rate_limited" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccessDecisionsTotal counts access-control decisions on gated routes.
// Labels:
//   - role: the role the route requires
//   - outcome: "allowed", "unauthenticated" or "forbidden"
var AccessDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_decisions_total",
		Help:      "Total number of access-control decisions, by required role and outcome.",
	},
	[]string{"role", "outcome"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts round trips to the remote catalog.
// Labels:
//   - endpoint: films, people, locations, species or vehicles
//   - outcome: "ok", "status_error" or "unavailable"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the remote catalog.",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamRequestDuration measures one round trip to the remote catalog.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests to the remote catalog.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── User metrics ──────────────────────────────────────────────────────────────

// UserMutationsTotal counts successful user writes.
// Label:
//   - op: "create", "update" or "delete"
var UserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_mutations_total",
		Help:      "Total number of successful user writes, by operation.",
	},
	[]string{"op"},
)
