package vfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for VFS operations.
var (
	// ErrNotFound indicates the referenced path does not resolve to a node.
	ErrNotFound = errors.New("path not found")
	// ErrNotDirectory indicates the path resolved to a non-directory node.
	ErrNotDirectory = errors.New("not a directory")
	// ErrNotFile indicates the path resolved to a non-file node.
	ErrNotFile = errors.New("not a file")
	// ErrLoad wraps failures while mirroring a real directory into memory.
	ErrLoad = errors.New("vfs load failed")
)

// DefaultName is the fingerprint name used when no physical source seeded
// the tree.
const DefaultName = "default_vfs"

// VFS owns the node tree, the current-directory cursor and the physical
// source path the tree was mirrored from (empty for the default skeleton).
type VFS struct {
	root   *Node
	cwd    string
	source string
}

// New creates a VFS around an existing root directory node.
func New(root *Node, source string) *VFS {
	return &VFS{root: root, cwd: "/", source: source}
}

// Root returns the root directory node.
func (v *VFS) Root() *Node { return v.root }

// CurrentDir returns the cursor path.
func (v *VFS) CurrentDir() string { return v.cwd }

// Source returns the physical source path, empty for the default skeleton.
func (v *VFS) Source() string { return v.source }

// abs joins path onto the cursor unless it is already absolute.
func (v *VFS) abs(path string) string {
	return joinPath(v.cwd, path)
}

// Lookup resolves an absolute-or-relative path to its node.
func (v *VFS) Lookup(path string) (*Node, error) {
	node, ok := Resolve(v.root, v.abs(path))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return node, nil
}

// List returns child names in insertion order. An empty directory yields
// an empty slice; an unresolvable path yields ErrNotFound and a
// non-directory node yields ErrNotDirectory, so callers can tell the
// three apart. Passing "" lists the current directory.
func (v *VFS) List(path string) ([]string, error) {
	if path == "" {
		path = v.cwd
	}
	node, err := v.Lookup(path)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return node.Names(), nil
}

// ChangeDir moves the cursor. A literal ".." ascends exactly one segment
// and is a no-op at the root; anything else is resolved absolute-or-
// relative and must denote a directory. The cursor is unchanged on error.
func (v *VFS) ChangeDir(path string) error {
	if path == ".." {
		v.cwd = parentPath(v.cwd)
		return nil
	}
	target := v.abs(path)
	node, ok := Resolve(v.root, target)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if !node.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	v.cwd = target
	return nil
}

// Remove deletes the node at path from its parent directory. Works on
// files and directories alike; removing a non-empty directory drops the
// whole subtree. If the cursor no longer resolves to a directory after
// the removal it is reset to the nearest existing ancestor.
func (v *VFS) Remove(path string) error {
	target := v.abs(path)
	name := basePath(target)
	if name == "" {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	parent, ok := Resolve(v.root, parentPath(target))
	if !ok || !parent.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if !parent.delete(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	v.repairCursor()
	return nil
}

// repairCursor walks the cursor up to the nearest path that still resolves
// to a directory.
func (v *VFS) repairCursor() {
	for v.cwd != "/" {
		if node, ok := Resolve(v.root, v.cwd); ok && node.IsDir() {
			return
		}
		v.cwd = parentPath(v.cwd)
	}
}

// ChangeOwner sets the owner attribute on the node at path. Resolution
// follows the same absolute-or-relative rule as Remove.
func (v *VFS) ChangeOwner(path, owner string) error {
	node, err := v.Lookup(path)
	if err != nil {
		return err
	}
	node.SetOwner(owner)
	return nil
}

// ReadFile returns the text payload of the file at path.
func (v *VFS) ReadFile(path string) (string, error) {
	node, err := v.Lookup(path)
	if err != nil {
		return "", err
	}
	if node.Kind() != KindFile {
		return "", fmt.Errorf("%w: %s", ErrNotFile, path)
	}
	return node.Content(), nil
}
