package vfs

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// NewDefault builds the built-in skeleton: /home, /etc/motd, /bin, /tmp.
func NewDefault() *VFS {
	root := NewDirectory()
	root.Put("home", NewDirectory())

	etc := NewDirectory()
	etc.Put("motd", NewFile("Welcome to VFS Emulator!"))
	root.Put("etc", etc)

	root.Put("bin", NewDirectory())
	root.Put("tmp", NewDirectory())
	return New(root, "")
}

// Mirror snapshots a real directory tree into memory. The load is a
// one-shot synchronous pass; the resulting tree keeps no reference to the
// real filesystem. Any unreadable entry aborts the whole load with a
// single error wrapping ErrLoad.
func Mirror(path string) (*VFS, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrLoad, path)
	}

	root := NewDirectory()
	if err := mirrorInto(path, root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return New(root, path), nil
}

// mirrorInto recursively copies entries of realPath into dir. ReadDir
// returns entries sorted by name, so mirrored trees list deterministically.
func mirrorInto(realPath string, dir *Node) error {
	entries, err := os.ReadDir(realPath)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		full := filepath.Join(realPath, entry.Name())
		if entry.IsDir() {
			child := NewDirectory()
			if err := mirrorInto(full, child); err != nil {
				return err
			}
			dir.Put(entry.Name(), child)
			continue
		}
		node, err := classifyFile(full, entry.Name())
		if err != nil {
			return err
		}
		dir.Put(entry.Name(), node)
	}
	return nil
}

// classifyFile reads an entry and decides between a text file node and a
// binary placeholder. Text requires both a text MIME detection and valid
// UTF-8; everything else keeps only the original name and detected type.
func classifyFile(path, name string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mtype := mimetype.Detect(data)
	if isTextMIME(mtype) && utf8.Valid(data) {
		return NewFile(string(data)), nil
	}
	return NewBinary(name, mtype.String()), nil
}

// isTextMIME reports whether the detected type descends from text/plain.
func isTextMIME(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
