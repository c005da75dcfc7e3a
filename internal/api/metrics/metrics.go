// Package metrics defines all custom Prometheus metrics for the partner
// directory API. It is the single source of truth for metric names, labels,
// and help strings; promauto registers everything with the default registry
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "superseded", "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionRestoresTotal counts session restore outcomes.
// Label:
//   - outcome: "active", "none", "expired", "corrupt"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogSearchesTotal counts filtered catalog list requests.
var CatalogSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_searches_total",
		Help:      "Total number of catalog list/search requests served.",
	},
)

// RecommendFallbacksTotal counts recommendation requests that fell back to
// the local ranking because the remote matcher failed.
var RecommendFallbacksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommend_fallbacks_total",
		Help:      "Total number of recommendation requests served by the local fallback ranking.",
	},
)

// ── Inquiry metrics ───────────────────────────────────────────────────────────

// InquiriesProcessedTotal counts inquiry processing outcomes.
// Label:
//   - result: "delivered", "rejected" (unknown business), "error" (send failed)
var InquiriesProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_processed_total",
		Help:      "Total number of partnership inquiries processed, labelled by result.",
	},
	[]string{"result"},
)

// InquiryQueueDepth tracks the number of inquiries waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var InquiryQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "inquiry_queue_depth",
		Help:      "Current number of inquiries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// InquiryDeliveryDuration measures end-to-end inquiry delivery time.
// Label:
//   - result: "delivered" or "error"
var InquiryDeliveryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "inquiry_delivery_duration_seconds",
		Help:      "Duration of inquiry processing from dequeue to mail handoff.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
