package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestObserveCommand tests counter labeling by command and outcome.
func TestObserveCommand(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCommand("ls", true, 5*time.Millisecond)
	m.ObserveCommand("ls", true, 5*time.Millisecond)
	m.ObserveCommand("cd", false, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CommandsTotal.WithLabelValues("ls", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CommandsTotal.WithLabelValues("cd", "error")))
}

// TestObserveScript tests script counters.
func TestObserveScript(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveScript(false)
	m.ObserveScript(true)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ScriptsRun))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ScriptFailures))
}

// TestNilMetricsSafe tests that a session without metrics does not panic.
func TestNilMetricsSafe(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveCommand("ls", true, time.Millisecond)
		m.ObserveParseError()
		m.ObserveScript(true)
	})
}
