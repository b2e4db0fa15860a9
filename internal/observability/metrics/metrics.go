package metrics

import "github.com/prometheus/client_golang/prometheus"

// TurnMetrics exposes counters/histograms for the dialogue turn pipeline.
type TurnMetrics struct {
	turnsTotal        *prometheus.CounterVec
	piiBlockedTotal   *prometheus.CounterVec
	fallbackTotal     *prometheus.CounterVec
	extractionLatency prometheus.Histogram
	bookingsCreated   prometheus.Counter
}

func NewTurnMetrics(reg prometheus.Registerer) *TurnMetrics {
	m := &TurnMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "dialogue",
			Name:      "turns_total",
			Help:      "Total processed turns by effective intent",
		}, []string{"intent"}),
		piiBlockedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "dialogue",
			Name:      "pii_blocked_total",
			Help:      "Turns intercepted by the PII guard",
		}, []string{"reason"}),
		fallbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "extraction",
			Name:      "fallback_total",
			Help:      "Extraction service failures routed to the local parser",
		}, []string{"reason"}),
		extractionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "advisor",
			Subsystem: "extraction",
			Name:      "latency_seconds",
			Help:      "Latency of the extraction step, service or fallback",
			Buckets:   prometheus.DefBuckets,
		}),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "dialogue",
			Name:      "bookings_created_total",
			Help:      "Bookings confirmed and persisted",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.piiBlockedTotal, m.fallbackTotal, m.extractionLatency, m.bookingsCreated)
	return m
}

func (m *TurnMetrics) ObserveTurn(intent string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(intent).Inc()
}

func (m *TurnMetrics) ObservePIIBlocked(reason string) {
	if m == nil {
		return
	}
	m.piiBlockedTotal.WithLabelValues(reason).Inc()
}

func (m *TurnMetrics) ObserveFallback(reason string) {
	if m == nil {
		return
	}
	m.fallbackTotal.WithLabelValues(reason).Inc()
}

func (m *TurnMetrics) ObserveExtractionLatency(seconds float64) {
	if m == nil {
		return
	}
	m.extractionLatency.Observe(seconds)
}

func (m *TurnMetrics) ObserveBookingCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}
