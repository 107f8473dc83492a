package vfs

import "strings"

// splitPath splits a path into segments, dropping empty segments produced
// by leading, trailing or doubled slashes.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Resolve walks from root to the node at path. Absolute and relative paths
// are treated identically here; callers join relative paths against the
// cursor before resolving. Any missing segment or non-directory
// intermediate yields (nil, false) uniformly.
func Resolve(root *Node, path string) (*Node, bool) {
	node := root
	for _, segment := range splitPath(path) {
		if node == nil || !node.IsDir() {
			return nil, false
		}
		node = node.Child(segment)
	}
	if node == nil {
		return nil, false
	}
	return node, true
}

// joinPath joins a relative path onto a base directory by simple
// concatenation. No "."/".." normalization is performed; a literal ".."
// is only meaningful to ChangeDir.
func joinPath(base, path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	if base == "/" {
		return "/" + path
	}
	return base + "/" + path
}

// parentPath returns the path one segment above p, or "/" when p is the
// root or a single segment.
func parentPath(p string) string {
	trimmed := strings.TrimRight(p, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx <= 0 {
		return "/"
	}
	return trimmed[:idx]
}

// basePath returns the last segment of p, or "" for the root.
func basePath(p string) string {
	trimmed := strings.TrimRight(p, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return trimmed
	}
	return trimmed[idx+1:]
}
