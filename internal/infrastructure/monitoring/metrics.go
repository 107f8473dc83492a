package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the shell's Prometheus collectors.
type Metrics struct {
	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	ParseErrors     prometheus.Counter
	ScriptsRun      prometheus.Counter
	ScriptFailures  prometheus.Counter
}

// New creates and registers the metric collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vfshell_commands_total",
			Help: "Commands executed, by command name and outcome",
		}, []string{"command", "status"}),
		CommandDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vfshell_command_duration_seconds",
			Help:    "Command execution latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
		ParseErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "vfshell_parse_errors_total",
			Help: "Inputs rejected at parse time",
		}),
		ScriptsRun: factory.NewCounter(prometheus.CounterOpts{
			Name: "vfshell_scripts_total",
			Help: "Startup scripts executed",
		}),
		ScriptFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "vfshell_script_failures_total",
			Help: "Startup scripts halted by a failing line",
		}),
	}
}

// ObserveCommand records one command execution.
func (m *Metrics) ObserveCommand(command string, success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if !success {
		status = "error"
	}
	m.CommandsTotal.WithLabelValues(command, status).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
}

// ObserveParseError records an input rejected before dispatch.
func (m *Metrics) ObserveParseError() {
	if m == nil {
		return
	}
	m.ParseErrors.Inc()
}

// ObserveScript records a script run and whether it halted on a failure.
func (m *Metrics) ObserveScript(failed bool) {
	if m == nil {
		return
	}
	m.ScriptsRun.Inc()
	if failed {
		m.ScriptFailures.Inc()
	}
}
