package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	walkStepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "history_walker",
		Name:      "steps_total",
		Help:      "Count of resolved chain steps.",
	}, []string{"network", "status"})

	walkStepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "history_walker",
		Name:      "step_duration_seconds",
		Help:      "Duration of a single chain step (transaction and box lookup).",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	walkBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "history_walker",
		Name:      "batches_total",
		Help:      "Count of loaded batches.",
	}, []string{"network", "status"})

	walkBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "history_walker",
		Name:      "batch_duration_seconds",
		Help:      "Duration of loading a batch of bids.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	walkBatchRecords = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "history_walker",
		Name:      "batch_records",
		Help:      "Number of bids resolved per batch.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0..100
	}, []string{"network"})

	walkGenesisTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "history_walker",
		Name:      "genesis_reached_total",
		Help:      "Count of walks that reached an auction's genesis box.",
	}, []string{"network"})
)

// HistoryWalker tracks metrics for bid history walks.
type HistoryWalker struct {
	network string
}

// NewHistoryWalker constructs a metrics collector for history walks.
func NewHistoryWalker(network string) *HistoryWalker {
	if network == "" {
		network = "unknown"
	}
	return &HistoryWalker{network: network}
}

func (m HistoryWalker) ObserveStep(err error, started time.Time) {
	status := statusOf(err)
	walkStepsTotal.WithLabelValues(m.network, status).Inc()
	walkStepDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

func (m HistoryWalker) ObserveBatch(err error, records int, started time.Time) {
	status := statusOf(err)
	walkBatchesTotal.WithLabelValues(m.network, status).Inc()
	walkBatchDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	walkBatchRecords.WithLabelValues(m.network).Observe(float64(records))
}

func (m HistoryWalker) ObserveGenesis() {
	walkGenesisTotal.WithLabelValues(m.network).Inc()
}
