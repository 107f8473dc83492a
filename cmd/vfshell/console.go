package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vfshell/vfshell/internal/shell"
)

// console is the interactive text front end. It owns all rendering and
// input collection; the session stays synchronous and I/O-free. It
// implements shell.Executor by printing each result as it executes, so
// the script runner shows output the same way the prompt does.
type console struct {
	session *shell.Session
	in      io.Reader
	out     io.Writer
}

func newConsole(session *shell.Session, in io.Reader, out io.Writer) *console {
	return &console{session: session, in: in, out: out}
}

// Execute runs one line through the session and renders its output.
func (c *console) Execute(ctx context.Context, line string) shell.Result {
	res := c.session.Execute(ctx, line)
	if res.Output != "" {
		fmt.Fprintln(c.out, res.Output)
	}
	return res
}

// printMOTD shows /etc/motd when the tree carries one.
func (c *console) printMOTD() {
	if motd, err := c.session.VFS().ReadFile("/etc/motd"); err == nil {
		fmt.Fprintln(c.out, motd)
	}
	fmt.Fprintln(c.out, "Type 'help' for the list of commands.")
}

// prompt renders user@host:cwd$.
func (c *console) prompt() string {
	id := c.session.Identity()
	return fmt.Sprintf("%s@%s:%s$ ", id.Username(), id.Hostname(), c.session.VFS().CurrentDir())
}

// loop reads lines until EOF or the exit command.
func (c *console) loop(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, c.prompt())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			fmt.Fprintln(c.out)
			return nil
		}
		res := c.Execute(ctx, scanner.Text())
		if res.Exit {
			return nil
		}
	}
}
