package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision module.
// All methods are safe on a nil receiver.
type Metrics struct {
	// Decision outcomes by status and reason (segment for approvals)
	DecisionOutcome *prometheus.CounterVec

	// Verify + decide latency
	EvaluateLatency prometheus.Histogram

	// Approved loan amounts
	ApprovedAmount prometheus.Histogram

	// Requests whose period was widened to reach the minimum amount, by segment
	PeriodAdjustments *prometheus.CounterVec
}

// New registers the decision collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DecisionOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "decision_engine_outcomes_total",
			Help: "Total decision outcomes by status and reason",
		}, []string{"status", "reason"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "decision_engine_evaluate_duration_seconds",
			Help:    "Duration of request validation and loan search",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),

		ApprovedAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "decision_engine_approved_amount_euros",
			Help:    "Approved loan amounts",
			Buckets: []float64{2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000},
		}),

		PeriodAdjustments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "decision_engine_period_adjustments_total",
			Help: "Decisions where the requested period was extended to reach the minimum amount",
		}, []string{"segment"}),
	}
}

// IncrementOutcome records a decision outcome.
func (m *Metrics) IncrementOutcome(status, reason string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(status, reason).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// ObserveApprovedAmount records an approved amount.
func (m *Metrics) ObserveApprovedAmount(amount int) {
	if m != nil {
		m.ApprovedAmount.Observe(float64(amount))
	}
}

// IncrementPeriodAdjustment records a widened period.
func (m *Metrics) IncrementPeriodAdjustment(segment string) {
	if m != nil {
		m.PeriodAdjustments.WithLabelValues(segment).Inc()
	}
}
