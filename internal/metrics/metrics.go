package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for EngagementOperations
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// EngagementOperations counts coordinator operations by name and outcome.
// "rejected" covers expected business refusals (already liked, not found,
// not authorized); "error" covers persistence failures.
var EngagementOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "engagement_operations_total",
		Help: "Engagement operations processed, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// LifecycleEvents counts consumed post lifecycle events by routing key and outcome.
var LifecycleEvents = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "post_lifecycle_events_total",
		Help: "Post lifecycle events consumed, by routing key and outcome.",
	},
	[]string{"routing_key", "outcome"},
)

// PublishFailures counts engagement notifications that could not be published.
var PublishFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "engagement_publish_failures_total",
		Help: "Engagement event publish failures after commit, by routing key.",
	},
	[]string{"routing_key"},
)
