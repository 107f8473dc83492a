package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunnerFailFast tests that the first failing line halts the script
// and reports its 1-based number.
func TestRunnerFailFast(t *testing.T) {
	s, rec := newTestSession(t)
	runner := NewRunner(s)

	err := runner.Run(context.Background(), []string{"ls", "cd /nowhere", "ls"})
	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)

	// The third line never executed.
	assert.Equal(t, []string{"ls", "cd /nowhere"}, s.History())
	rec.AssertNumberOfCalls(t, "Record", 2)
}

// TestRunnerSkipsBlankAndComments tests that blank and #-prefixed lines
// are neither executed nor counted as failures, while numbering still
// reflects the original line positions.
func TestRunnerSkipsBlankAndComments(t *testing.T) {
	s, _ := newTestSession(t)
	runner := NewRunner(s)

	err := runner.Run(context.Background(), []string{
		"# seed layout",
		"",
		"cd /etc",
		"   ",
		"cd /nowhere",
	})
	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 5, lineErr.Line)
	assert.Equal(t, []string{"cd /etc", "cd /nowhere"}, s.History())
}

// TestRunnerSuccess tests that a fully valid script reports no error.
func TestRunnerSuccess(t *testing.T) {
	s, _ := newTestSession(t)
	runner := NewRunner(s)

	require.NoError(t, runner.Run(context.Background(), []string{"ls", "cd /home", "whoami"}))
	assert.Equal(t, "/home", s.VFS().CurrentDir())
}

// TestRunnerStopsOnExit tests that exit ends the script without error and
// without running the remaining lines.
func TestRunnerStopsOnExit(t *testing.T) {
	s, _ := newTestSession(t)
	runner := NewRunner(s)

	require.NoError(t, runner.Run(context.Background(), []string{"exit", "ls"}))
	assert.True(t, s.Closed())
	assert.Equal(t, []string{"exit"}, s.History())
}

// TestRunnerEcho tests the per-line echo hook.
func TestRunnerEcho(t *testing.T) {
	s, _ := newTestSession(t)
	runner := NewRunner(s)

	var echoed []string
	runner.Echo = func(line int, text string) {
		echoed = append(echoed, text)
	}

	require.NoError(t, runner.Run(context.Background(), []string{"# comment", "ls"}))
	assert.Equal(t, []string{"ls"}, echoed)
}
