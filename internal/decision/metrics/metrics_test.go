package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementOutcome("approved", "segment_2")
	m.IncrementOutcome("approved", "segment_2")
	m.IncrementPeriodAdjustment("segment_1")
	m.ObserveApprovedAmount(3600)
	m.ObserveEvaluateLatency(50 * time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DecisionOutcome.WithLabelValues("approved", "segment_2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PeriodAdjustments.WithLabelValues("segment_1")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"decision_engine_outcomes_total",
		"decision_engine_evaluate_duration_seconds",
		"decision_engine_approved_amount_euros",
		"decision_engine_period_adjustments_total",
	}, names)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementOutcome("approved", "segment_1")
		m.ObserveEvaluateLatency(time.Millisecond)
		m.ObserveApprovedAmount(2000)
		m.IncrementPeriodAdjustment("segment_1")
	})
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
