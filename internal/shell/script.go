package shell

import (
	"context"
	"fmt"
	"strings"
)

// LineError reports the 1-based script line at which execution halted.
type LineError struct {
	Line    int
	Message string
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("script halted at line %d: %s", e.Line, e.Message)
}

// Runner feeds an ordered sequence of raw lines into an Executor with
// fail-fast semantics. Interactive single-shot submission is the same
// Executor contract with one line, not a separate code path.
type Runner struct {
	exec Executor
	// Echo, when set, receives each line before execution, prefixed with
	// its 1-based number. Front ends use it to display script progress.
	Echo func(line int, text string)
}

// NewRunner creates a runner over exec.
func NewRunner(exec Executor) *Runner {
	return &Runner{exec: exec}
}

// Run executes every non-blank, non-comment line in order. The first
// failed line stops execution and is reported via *LineError. A line that
// requests exit stops the remaining lines without error.
func (r *Runner) Run(ctx context.Context, lines []string) error {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if r.Echo != nil {
			r.Echo(i+1, trimmed)
		}
		res := r.exec.Execute(ctx, trimmed)
		if !res.Success {
			return &LineError{Line: i + 1, Message: res.Output}
		}
		if res.Exit {
			return nil
		}
	}
	return nil
}
