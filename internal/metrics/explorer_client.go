// Package metrics exposes Prometheus collectors for the bid history service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auction_history"

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "explorer_client",
		Name:      "operations_total",
		Help:      "Count of explorer lookups.",
	}, []string{"operation", "network", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "explorer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of explorer lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ExplorerClient tracks metrics for explorer lookups.
type ExplorerClient struct {
	network string
}

// NewExplorerClient constructs a metrics collector for explorer lookups.
func NewExplorerClient(network string) *ExplorerClient {
	if network == "" {
		network = "unknown"
	}
	return &ExplorerClient{network: network}
}

// Observe records a single lookup outcome and duration.
func (m ExplorerClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	explorerRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	explorerRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
