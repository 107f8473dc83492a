package shell

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vfshell/vfshell/internal/audit"
	"github.com/vfshell/vfshell/internal/infrastructure/logging"
	"github.com/vfshell/vfshell/internal/infrastructure/monitoring"
	"github.com/vfshell/vfshell/internal/shared/identity"
	"github.com/vfshell/vfshell/internal/vfs"
)

// Options configures the session's collaborators. Zero values select a
// host-backed identity, a discarding audit recorder, a no-op logger and
// no metrics.
type Options struct {
	Identity identity.Identity
	Audit    audit.Recorder
	Logger   *logging.Logger
	Metrics  *monitoring.Metrics
}

// Session owns the VFS tree, the command registry and the command history
// for one shell instance. It is the single mutable state holder; nothing
// here is a package-level global. Sessions are single-threaded by design
// and hold no locks.
type Session struct {
	ID       string
	vfs      *vfs.VFS
	registry *Registry
	history  []string
	identity identity.Identity
	audit    audit.Recorder
	log      *logging.Logger
	metrics  *monitoring.Metrics
	closed   bool
}

// NewSession builds a session over fs with the full default command set.
func NewSession(fs *vfs.VFS, opts Options) *Session {
	if opts.Identity == nil {
		opts.Identity = identity.NewHost()
	}
	if opts.Audit == nil {
		opts.Audit = audit.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}

	s := &Session{
		ID:       uuid.NewString(),
		vfs:      fs,
		registry: NewRegistry(),
		identity: opts.Identity,
		audit:    opts.Audit,
		log:      opts.Logger,
		metrics:  opts.Metrics,
	}
	for _, cmd := range defaultCommands() {
		// The default set is closed and well-formed; a registration
		// failure here is a programming error.
		if err := s.registry.Register(cmd); err != nil {
			panic(err)
		}
	}
	return s
}

// VFS returns the session's filesystem.
func (s *Session) VFS() *vfs.VFS { return s.vfs }

// Identity returns the session's identity collaborator.
func (s *Session) Identity() identity.Identity { return s.identity }

// Registry returns the session's command registry.
func (s *Session) Registry() *Registry { return s.registry }

// History returns the raw submitted lines in execution order, including
// failed ones, each verbatim.
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Closed reports whether the exit command has been executed.
func (s *Session) Closed() bool { return s.closed }

// Execute runs one raw command line through Parse -> Lookup -> Execute ->
// Report. Empty input (after trimming) is a no-op success that is neither
// recorded nor logged; everything else produces exactly one history entry
// and one audit record, successful or not, both holding the submitted
// line verbatim.
func (s *Session) Execute(ctx context.Context, line string) Result {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ok("")
	}

	start := time.Now()
	tokens, err := Tokenize(trimmed)
	if err != nil {
		res := fail(err.Error())
		s.metrics.ObserveParseError()
		s.report(line, res)
		return res
	}

	name := ""
	if len(tokens) > 0 {
		name = tokens[0]
	}

	var res Result
	cmd, found := s.registry.Get(name)
	if !found {
		res = fail(fmt.Sprintf("unknown command: %s", name))
	} else {
		res = cmd.Execute(ctx, tokens[1:], s)
	}
	if res.Exit {
		s.closed = true
	}

	s.metrics.ObserveCommand(name, res.Success, time.Since(start))
	s.report(line, res)
	return res
}

// report appends the verbatim line to history and forwards the execution
// tuple to the audit recorder.
func (s *Session) report(raw string, res Result) {
	s.history = append(s.history, raw)

	errMsg := ""
	if !res.Success {
		errMsg = res.Output
	}
	entry := audit.Entry{
		Timestamp: time.Now(),
		Command:   raw,
		Success:   res.Success,
		Error:     errMsg,
		Username:  s.identity.Username(),
	}
	if err := s.audit.Record(entry); err != nil {
		s.log.Warn("audit record failed", zap.Error(err))
	}

	s.log.Debug("command executed",
		zap.String("session", s.ID),
		zap.String("command", raw),
		zap.Bool("success", res.Success),
		zap.String("cwd", s.vfs.CurrentDir()),
	)
}
