// Package metrics defines and registers all custom Prometheus metrics for the
// AgriGo storefront. It is the single source of truth for metric names,
// labels, and help strings. Collectors register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Upstream (marketplace backend) metrics ───────────────────────────────────

// UpstreamRequestsTotal counts requests issued to the marketplace backend.
// Labels:
//   - endpoint: logical operation name (e.g. "login", "farmer_products")
//   - outcome: "ok", "remote_error", or "unreachable"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the marketplace backend.",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamRequestDuration measures round-trip latency per backend operation.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of marketplace backend requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// SessionOpsTotal counts session-store operations.
// Labels:
//   - op: "get", "set", or "clear"
//   - result: "ok", "miss", or "error"
var SessionOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_ops_total",
		Help:      "Total number of session store operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// BusyRejectionsTotal counts operations refused because the session's view
// controller was already mid-flight.
var BusyRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "busy_rejections_total",
		Help:      "Total number of requests rejected by the per-session busy guard.",
	},
)
