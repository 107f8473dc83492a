package shell

import (
	"context"
	"fmt"
	"strings"
)

// defaultCommands returns the full command set in the order help lists it.
func defaultCommands() []Command {
	return []Command{
		lsCommand{},
		cdCommand{},
		whoamiCommand{},
		whoCommand{},
		rmCommand{},
		chownCommand{},
		infoCommand{},
		historyCommand{},
		helpCommand{},
		exitCommand{},
	}
}

type lsCommand struct{}

func (lsCommand) Name() string    { return "ls" }
func (lsCommand) Usage() string   { return "ls [path]" }
func (lsCommand) Summary() string { return "list directory contents" }

func (lsCommand) Execute(_ context.Context, args []string, s *Session) Result {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	names, err := s.vfs.List(path)
	if err != nil {
		return fail(fmt.Sprintf("directory not found: %s", path))
	}
	if len(names) == 0 {
		return ok("directory is empty")
	}
	return ok(strings.Join(names, "\n"))
}

type cdCommand struct{}

func (cdCommand) Name() string    { return "cd" }
func (cdCommand) Usage() string   { return "cd <path>" }
func (cdCommand) Summary() string { return "change current directory" }

func (cdCommand) Execute(_ context.Context, args []string, s *Session) Result {
	if len(args) == 0 {
		return fail("usage: cd <path>")
	}
	if err := s.vfs.ChangeDir(args[0]); err != nil {
		return fail(fmt.Sprintf("directory not found: %s", args[0]))
	}
	return ok(fmt.Sprintf("current directory: %s", s.vfs.CurrentDir()))
}

type whoamiCommand struct{}

func (whoamiCommand) Name() string    { return "whoami" }
func (whoamiCommand) Usage() string   { return "whoami" }
func (whoamiCommand) Summary() string { return "print current user" }

func (whoamiCommand) Execute(_ context.Context, _ []string, s *Session) Result {
	return ok(s.identity.Username())
}

type whoCommand struct{}

func (whoCommand) Name() string    { return "who" }
func (whoCommand) Usage() string   { return "who" }
func (whoCommand) Summary() string { return "list logged-in users" }

func (whoCommand) Execute(_ context.Context, _ []string, s *Session) Result {
	host := s.identity.Hostname()
	users := []string{"admin", s.identity.Username(), "guest"}
	lines := make([]string, len(users))
	for i, u := range users {
		lines[i] = fmt.Sprintf("%s@%s", u, host)
	}
	return ok(strings.Join(lines, "\n"))
}

type rmCommand struct{}

func (rmCommand) Name() string    { return "rm" }
func (rmCommand) Usage() string   { return "rm <path>" }
func (rmCommand) Summary() string { return "remove a file or directory" }

func (rmCommand) Execute(_ context.Context, args []string, s *Session) Result {
	if len(args) == 0 {
		return fail("usage: rm <path>")
	}
	if err := s.vfs.Remove(args[0]); err != nil {
		return fail(fmt.Sprintf("file not found: %s", args[0]))
	}
	return ok(fmt.Sprintf("removed: %s", args[0]))
}

type chownCommand struct{}

func (chownCommand) Name() string    { return "chown" }
func (chownCommand) Usage() string   { return "chown <owner> <path>" }
func (chownCommand) Summary() string { return "change owner of a node" }

func (chownCommand) Execute(_ context.Context, args []string, s *Session) Result {
	if len(args) < 2 {
		return fail("usage: chown <owner> <path>")
	}
	owner, path := args[0], args[1]
	if err := s.vfs.ChangeOwner(path, owner); err != nil {
		return fail(fmt.Sprintf("file not found: %s", path))
	}
	return ok(fmt.Sprintf("owner changed: %s -> %s", path, owner))
}

type infoCommand struct{}

func (infoCommand) Name() string    { return "vfs-info" }
func (infoCommand) Usage() string   { return "vfs-info" }
func (infoCommand) Summary() string { return "show VFS name and integrity hash" }

func (infoCommand) Execute(_ context.Context, _ []string, s *Session) Result {
	name, digest, err := s.vfs.Fingerprint()
	if err != nil {
		return fail(fmt.Sprintf("fingerprint failed: %v", err))
	}
	return ok(fmt.Sprintf("VFS: %s\nSHA-256: %s", name, digest))
}

type historyCommand struct{}

func (historyCommand) Name() string    { return "history" }
func (historyCommand) Usage() string   { return "history" }
func (historyCommand) Summary() string { return "show command history" }

func (historyCommand) Execute(_ context.Context, _ []string, s *Session) Result {
	return ok(strings.Join(s.history, "\n"))
}

type helpCommand struct{}

func (helpCommand) Name() string    { return "help" }
func (helpCommand) Usage() string   { return "help" }
func (helpCommand) Summary() string { return "show this help" }

func (helpCommand) Execute(_ context.Context, _ []string, s *Session) Result {
	var b strings.Builder
	b.WriteString("available commands:")
	for _, cmd := range s.registry.List() {
		b.WriteString(fmt.Sprintf("\n  %-22s %s", cmd.Usage(), cmd.Summary()))
	}
	return ok(b.String())
}

type exitCommand struct{}

func (exitCommand) Name() string    { return "exit" }
func (exitCommand) Usage() string   { return "exit" }
func (exitCommand) Summary() string { return "leave the shell" }

func (exitCommand) Execute(_ context.Context, _ []string, _ *Session) Result {
	return Result{Success: true, Exit: true}
}
