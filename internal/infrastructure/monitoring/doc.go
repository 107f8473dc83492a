/*
Package monitoring provides Prometheus metrics for command execution.

The session records one observation per top-level command: a counter by
command name and outcome, a duration histogram, and a counter of inputs
rejected at parse time. Metrics are registered on a caller-supplied
Registerer so embedders decide whether and how to expose them; the core
itself serves no metrics endpoint.

	metrics := monitoring.New(prometheus.DefaultRegisterer)
	metrics.ObserveCommand("ls", true, elapsed)
*/
package monitoring
