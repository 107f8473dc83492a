package vfs

// Kind discriminates node variants.
type Kind uint8

const (
	// KindDirectory is a named mapping of children.
	KindDirectory Kind = iota
	// KindFile is an opaque text payload.
	KindFile
	// KindBinary marks an entry whose content could not be stored as text.
	// It records the original entry name and detected MIME type instead of
	// a payload, so it can never be confused with genuine text content.
	KindBinary
)

// Node is a single entry in the virtual filesystem tree.
type Node struct {
	kind  Kind
	owner string

	// File payload; for KindBinary the original entry name.
	content string
	// Detected MIME type, KindBinary only.
	mimeType string

	// Directory children, insertion order preserved for listing stability.
	names    []string
	children map[string]*Node
}

// NewDirectory creates an empty directory node.
func NewDirectory() *Node {
	return &Node{
		kind:     KindDirectory,
		children: make(map[string]*Node),
	}
}

// NewFile creates a file node with the given text content.
func NewFile(content string) *Node {
	return &Node{kind: KindFile, content: content}
}

// NewBinary creates a binary placeholder node for an entry that could not
// be decoded as text.
func NewBinary(name, mimeType string) *Node {
	return &Node{kind: KindBinary, content: name, mimeType: mimeType}
}

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.kind == KindDirectory }

// Content returns the text payload of a file node. For binary nodes it
// returns the original entry name.
func (n *Node) Content() string { return n.content }

// MIMEType returns the detected MIME type of a binary node, empty otherwise.
func (n *Node) MIMEType() string { return n.mimeType }

// Owner returns the owner attribute and whether it is set.
func (n *Node) Owner() (string, bool) { return n.owner, n.owner != "" }

// SetOwner sets the owner attribute.
func (n *Node) SetOwner(owner string) { n.owner = owner }

// Child looks up a direct child by name. Returns nil for non-directories.
func (n *Node) Child(name string) *Node {
	if n.kind != KindDirectory {
		return nil
	}
	return n.children[name]
}

// Names returns child names in insertion order. The returned slice is a
// copy; mutating it does not affect the node.
func (n *Node) Names() []string {
	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

// Len returns the number of children of a directory node.
func (n *Node) Len() int { return len(n.names) }

// Put inserts or replaces a child, keeping insertion order stable. It is
// the only way nodes enter the tree; loaders and tests build with it.
func (n *Node) Put(name string, child *Node) {
	if _, exists := n.children[name]; !exists {
		n.names = append(n.names, name)
	}
	n.children[name] = child
}

// delete removes a child by name, reporting whether it was present.
func (n *Node) delete(name string) bool {
	if _, ok := n.children[name]; !ok {
		return false
	}
	delete(n.children, name)
	for i, existing := range n.names {
		if existing == name {
			n.names = append(n.names[:i], n.names[i+1:]...)
			break
		}
	}
	return true
}
