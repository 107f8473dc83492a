// Package shell implements the command interpreter: shell-style line
// parsing, a closed registry of commands, the session that owns the VFS
// and command history, and the fail-fast script runner.
//
// Every invocation follows Parse -> Lookup -> Execute -> Report. All
// failures, from unterminated quotes to missing VFS paths, are converted
// to a (Success=false, Output=message) Result at the dispatch boundary;
// nothing escapes as a panic or error value. The host decides whether a
// failure is fatal: the script runner stops at the first one, interactive
// front ends carry on.
package shell
