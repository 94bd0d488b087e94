// Package metrics exposes Prometheus instrumentation for record flows.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// RecordMetrics exposes counters/histograms for report and appointment flows.
type RecordMetrics struct {
	reportsTotal   *prometheus.CounterVec
	bookingsTotal  prometheus.Counter
	staffActions   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewRecordMetrics registers record flow metrics against reg, falling back to
// the default registerer when reg is nil.
func NewRecordMetrics(reg prometheus.Registerer) *RecordMetrics {
	m := &RecordMetrics{
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nutrition",
			Subsystem: "records",
			Name:      "reports_total",
			Help:      "Total health reports saved, by weight status",
		}, []string{"weight_status"}),
		bookingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nutrition",
			Subsystem: "records",
			Name:      "bookings_total",
			Help:      "Total appointments booked",
		}),
		staffActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nutrition",
			Subsystem: "records",
			Name:      "staff_actions_total",
			Help:      "Total admin staff actions dispatched",
		}, []string{"action", "outcome"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nutrition",
			Subsystem: "http",
			Name:      "request_latency_seconds",
			Help:      "Latency of HTTP request handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.reportsTotal, m.bookingsTotal, m.staffActions, m.requestLatency)
	return m
}

// ObserveReport counts a saved report. An empty status is recorded as
// "undefined".
func (m *RecordMetrics) ObserveReport(weightStatus string) {
	if m == nil {
		return
	}
	if weightStatus == "" {
		weightStatus = "undefined"
	}
	m.reportsTotal.WithLabelValues(weightStatus).Inc()
}

// ObserveBooking counts a new appointment.
func (m *RecordMetrics) ObserveBooking() {
	if m == nil {
		return
	}
	m.bookingsTotal.Inc()
}

// ObserveStaffAction counts an admin dispatch and its outcome.
func (m *RecordMetrics) ObserveStaffAction(action, outcome string) {
	if m == nil {
		return
	}
	m.staffActions.WithLabelValues(action, outcome).Inc()
}

// ObserveRequestLatency records handler latency for a route pattern.
func (m *RecordMetrics) ObserveRequestLatency(route string, seconds float64) {
	if m == nil {
		return
	}
	m.requestLatency.WithLabelValues(route).Observe(seconds)
}
