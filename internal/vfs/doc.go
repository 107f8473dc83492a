// Package vfs implements the in-memory virtual filesystem: a tree of named
// directory/file nodes with a current-directory cursor, path resolution,
// mutation operations, and deterministic integrity fingerprinting.
//
// The tree is built once at startup, either from a fixed default skeleton
// or by mirroring a real directory into memory, and lives for the duration
// of the shell session. All operations are synchronous and single-threaded
// by design; the session owns the tree exclusively.
package vfs
