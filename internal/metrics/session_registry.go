package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsOpenedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sessions",
		Name:      "opened_total",
		Help:      "Count of opened bid history sessions.",
	}, []string{"network"})

	sessionsReleasedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sessions",
		Name:      "released_total",
		Help:      "Count of released bid history sessions by reason.",
	}, []string{"network", "reason"})
)

// SessionRegistry tracks session lifecycle metrics.
type SessionRegistry struct {
	network string
}

func NewSessionRegistry(network string) *SessionRegistry {
	if network == "" {
		network = "unknown"
	}
	return &SessionRegistry{network: network}
}

func (m SessionRegistry) ObserveOpen() {
	sessionsOpenedTotal.WithLabelValues(m.network).Inc()
}

func (m SessionRegistry) ObserveClose(reason string) {
	sessionsReleasedTotal.WithLabelValues(m.network, reason).Inc()
}

// RegisterOpenSessions exposes the number of open sessions reported by count.
// It must be called at most once per process.
func RegisterOpenSessions(network string, count func() int) prometheus.GaugeFunc {
	return promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   "sessions",
		Name:        "open",
		Help:        "Number of open bid history sessions.",
		ConstLabels: prometheus.Labels{"network": network},
	}, func() float64 {
		return float64(count())
	})
}
