// Package audit records every top-level command execution. The session
// invokes the Recorder exactly once per non-empty command, successful or
// not; the storage format belongs to the implementation.
package audit

import "time"

// Entry is the per-command tuple forwarded by the session.
type Entry struct {
	Timestamp time.Time
	Command   string
	Success   bool
	Error     string // empty on success
	Username  string
}

// Recorder consumes one Entry per executed command.
type Recorder interface {
	Record(e Entry) error
}

// Nop discards all entries.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(Entry) error { return nil }
