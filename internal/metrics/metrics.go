// Package metrics defines the Prometheus metrics the client SDK emits. It is
// the single source of truth for metric names, labels, and help strings.
//
// Metrics register with the default registry via promauto; a host process
// that exposes /metrics picks them up without extra wiring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "matching_client"

// RequestsTotal counts outbound API calls by final outcome.
// Labels:
//   - method: HTTP method of the call
//   - outcome: ok, unauthorized, client_error, server_error, transport_error, decode_error
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API requests issued by the client.",
	},
	[]string{"method", "outcome"},
)

// SessionInvalidationsTotal counts global session teardowns triggered by an
// unauthorized response from any endpoint.
var SessionInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of session teardowns caused by 401 responses.",
	},
)

// Outcome label values for RequestsTotal.
const (
	OutcomeOK             = "ok"
	OutcomeUnauthorized   = "unauthorized"
	OutcomeClientError    = "client_error"
	OutcomeServerError    = "server_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
)
