// Package identity supplies the current username and hostname to the
// shell. The core treats both as opaque strings; this keeps whoami/who
// and session display testable without touching the real host.
package identity

import (
	"os"
	"os/user"
)

// Identity resolves the invoking user and host.
type Identity interface {
	Username() string
	Hostname() string
}

// Host reads identity from the operating system.
type Host struct{}

// NewHost creates an OS-backed identity.
func NewHost() Host { return Host{} }

// Username returns the current user's name, falling back to $USER and
// then a fixed label when the lookup fails.
func (Host) Username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

// Hostname returns the machine hostname, or a fixed label on failure.
func (Host) Hostname() string {
	if name, err := os.Hostname(); err == nil && name != "" {
		return name
	}
	return "localhost"
}

// Static is a fixed identity, used by tests and embedders that already
// know who is driving the session.
type Static struct {
	User string
	Host string
}

// Username returns the fixed user name.
func (s Static) Username() string { return s.User }

// Hostname returns the fixed host name.
func (s Static) Hostname() string { return s.Host }
