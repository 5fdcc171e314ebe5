// Package metrics defines and registers all custom Prometheus metrics for
// the catalog API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time via
// promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// MoviesCreatedTotal counts catalog entries added, by origin.
// Labels:
//   - source: "manual" (admin form) or "external" (saved from the movie
//     API, directly or via bulk import)
var MoviesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_created_total",
		Help:      "Total number of catalog entries created, by source.",
	},
	[]string{"source"},
)

// MoviesDeletedTotal counts catalog entries removed by admins.
var MoviesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movies_deleted_total",
		Help:      "Total number of catalog entries deleted.",
	},
)

// QueryDuration measures how long a catalog list query takes in storage.
// Label:
//   - sort: the sort key applied ("rating", "year", "title", "createdAt")
var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of catalog list queries against MongoDB.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"sort"},
)

// CacheLookupsTotal counts list-cache decisions.
// Label:
//   - result: "hit" (served from Redis) or "miss" (went to MongoDB)
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of list-cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ImportQueueDepth tracks the number of entries waiting in each import worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ImportQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "import_queue_depth",
		Help:      "Current number of entries pending in each import worker channel.",
	},
	[]string{"worker_id"},
)

// ImportErrorsTotal counts bulk-import items that failed processing.
// Label:
//   - reason: short description of the failure ("duplicate_title",
//     "storage_error", "queue_closed")
var ImportErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_errors_total",
		Help:      "Total number of bulk-import items that failed processing.",
	},
	[]string{"reason"},
)
