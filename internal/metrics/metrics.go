package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "cookiejar"
)

var (
	// OperationsCounter counts accessor operations by name.
	OperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "A counter metric to measure cookie accessor operations",
		},
		[]string{"operation"},
	)

	// StoreErrorsCounter counts contained store failures by accessor operation.
	StoreErrorsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "A counter metric to measure ambient store failures",
		},
		[]string{"operation"},
	)

	// NATSErrors counts errors returned by the NATS key/value backend.
	NATSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nats_errors_total",
			Help:      "A counter metric to measure NATS errors",
		},
		[]string{"operation"},
	)
)

// Operation increments the counter for the given accessor operation.
func Operation(op string) {
	OperationsCounter.With(prometheus.Labels{"operation": op}).Inc()
}

// StoreError increments the store failure counter for the given operation.
func StoreError(op string) {
	StoreErrorsCounter.With(prometheus.Labels{"operation": op}).Inc()
}

// NATSError increments the NATS error counter.
func NATSError(op string) {
	NATSErrors.With(prometheus.Labels{"operation": op}).Inc()
}
