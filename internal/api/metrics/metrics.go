// Package metrics defines and registers all custom Prometheus metrics for the
// user service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; the /metrics endpoint is served by the echoprometheus handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pokebid_users"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "conflict", or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CoinOperationsTotal counts balance mutations.
// Labels:
//   - op: "add" or "deduct"
//   - result: "success", "insufficient_funds", or "error"
var CoinOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coin_operations_total",
		Help:      "Total number of LimCoin balance mutations, by operation and result.",
	},
	[]string{"op", "result"},
)

// CollaboratorRequestDuration measures outbound calls to the pokemon and
// auction services.
// Labels:
//   - service: "pokemon" or "auction"
//   - method: HTTP method of the outbound call
var CollaboratorRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "collaborator_request_duration_seconds",
		Help:      "Duration of outbound collaborator calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"service", "method"},
)

// CollaboratorErrorsTotal counts failed outbound collaborator calls.
// Label:
//   - service: "pokemon" or "auction"
var CollaboratorErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collaborator_errors_total",
		Help:      "Total number of failed outbound collaborator calls.",
	},
	[]string{"service"},
)
