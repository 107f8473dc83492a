package shell

import "context"

// Result is the outcome of one command invocation. Output carries either
// the rendered output or the error message, per the success flag. Exit is
// set only by the exit command and tells the host loop to terminate.
type Result struct {
	Success bool
	Output  string
	Exit    bool
}

// ok builds a successful result.
func ok(output string) Result {
	return Result{Success: true, Output: output}
}

// fail builds a failed result.
func fail(output string) Result {
	return Result{Success: false, Output: output}
}

// Command is one shell command. Implementations validate their own
// argument shape and return a usage-error result on malformed input
// rather than an error value.
type Command interface {
	// Name is the first token that selects this command.
	Name() string
	// Usage is the one-line invocation syntax shown by help.
	Usage() string
	// Summary is the short description shown by help.
	Summary() string
	// Execute runs the command with the tokens following the name.
	Execute(ctx context.Context, args []string, s *Session) Result
}

// Executor is the single-line execution contract shared by interactive
// front ends and the script runner. Session implements it.
type Executor interface {
	Execute(ctx context.Context, line string) Result
}
