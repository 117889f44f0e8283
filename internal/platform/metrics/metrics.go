package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tokenswap"

type Metrics struct {
	registry         *prometheus.Registry
	quotes           *prometheus.CounterVec
	swaps            *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	refreshes        *prometheus.CounterVec
	snapshotTakenAt  prometheus.Gauge
}

var (
	defaultOnce sync.Once
	defaultSet  *Metrics
)

// Default returns the process-wide metric set, registering it on first use.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultSet = New()
	})
	return defaultSet
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Swap quotes served, by direction and result.",
		}, []string{"direction", "result"}),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swaps_total",
			Help:      "Swap submissions forwarded to the provider, by result.",
		}, []string{"result"}),
		providerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "request_duration_seconds",
			Help:      "Duration of signed calls to the swap provider in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "result"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "refreshes_total",
			Help:      "Rate snapshot refresh runs, by result.",
		}, []string{"result"}),
		snapshotTakenAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "snapshot",
			Name:      "taken_at_seconds",
			Help:      "Unix time of the last stored rate snapshot.",
		}),
	}
	m.registry.MustRegister(m.quotes, m.swaps, m.providerDuration, m.refreshes, m.snapshotTakenAt)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveQuote(direction string, err error) {
	m.quotes.WithLabelValues(direction, result(err)).Inc()
}

func (m *Metrics) ObserveSwap(err error) {
	m.swaps.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) ObserveProviderCall(operation string, started time.Time, err error) {
	m.providerDuration.WithLabelValues(operation, result(err)).Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveRefresh(takenAt time.Time, err error) {
	m.refreshes.WithLabelValues(result(err)).Inc()
	if err == nil {
		m.snapshotTakenAt.Set(float64(takenAt.Unix()))
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
