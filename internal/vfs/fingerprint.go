package vfs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/bytedance/sonic"
)

// canonicalJSON marshals with sorted map keys so that two logically equal
// trees serialize identically regardless of in-memory insertion order.
var canonicalJSON = sonic.Config{SortMapKeys: true}.Froze()

// Fingerprint returns a display name for the tree plus a lowercase sha256
// hex digest of its canonical serialization. The name is the last segment
// of the physical source path, or DefaultName when the tree was seeded
// from the built-in skeleton.
func (v *VFS) Fingerprint() (string, string, error) {
	name := DefaultName
	if v.source != "" {
		if base := basePath(v.source); base != "" {
			name = base
		}
	}

	data, err := canonicalJSON.Marshal(map[string]interface{}{"/": canonicalize(v.root)})
	if err != nil {
		return "", "", fmt.Errorf("serialize tree: %w", err)
	}
	sum := sha256.Sum256(data)
	return name, hex.EncodeToString(sum[:]), nil
}

// canonicalize converts a node into a plain structure of maps so the
// key-sorted marshal covers every level of the tree. Owner is included
// only when set, matching the unset-by-default attribute semantics.
func canonicalize(n *Node) map[string]interface{} {
	var out map[string]interface{}
	switch n.Kind() {
	case KindDirectory:
		content := make(map[string]interface{}, n.Len())
		for _, name := range n.Names() {
			content[name] = canonicalize(n.Child(name))
		}
		out = map[string]interface{}{"type": "directory", "content": content}
	case KindFile:
		out = map[string]interface{}{"type": "file", "content": n.Content()}
	case KindBinary:
		out = map[string]interface{}{"type": "binary", "name": n.Content(), "mime": n.MIMEType()}
	}
	if owner, ok := n.Owner(); ok {
		out["owner"] = owner
	}
	return out
}
