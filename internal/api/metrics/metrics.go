// Package metrics defines and registers all custom Prometheus metrics for
// the Flavor Table API. It is the single source of truth for metric names,
// labels, and help strings; registration happens via promauto at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "flavortable"

// ── Provider metrics ──────────────────────────────────────────────────────────

// ProviderRequestsTotal counts outbound calls to the recipe provider.
// Labels:
//   - endpoint: "search", "random", or "detail"
//   - outcome: "ok", "upstream_error", "transport_error", or "decode_error"
var ProviderRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_requests_total",
		Help:      "Total number of requests issued to the recipe provider.",
	},
	[]string{"endpoint", "outcome"},
)

// ProviderRequestDuration measures the wall time of one provider round trip.
var ProviderRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_request_duration_seconds",
		Help:      "Duration of recipe provider round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// RecipeCacheTotal counts detail-cache lookups.
// Label:
//   - result: "hit" or "miss"
var RecipeCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipe_cache_total",
		Help:      "Total number of recipe detail cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Favorites metrics ─────────────────────────────────────────────────────────

// FavoritesMutationsTotal counts favorite create/update/delete attempts.
// Labels:
//   - operation: "create", "update", or "delete"
//   - outcome: "ok" or "error"
var FavoritesMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorites_mutations_total",
		Help:      "Total number of favorite mutations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of successfully registered users.",
	},
)
