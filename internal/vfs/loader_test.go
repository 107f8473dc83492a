package vfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMirrorRoundTrip tests that a real directory is snapshotted with its
// text content intact.
func TestMirrorRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "b.txt"), []byte("hello"), 0o644))

	v, err := Mirror(dir)
	require.NoError(t, err)

	names, err := v.List("/a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, names)

	content, err := v.ReadFile("/a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	name, _, err := v.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), name)
}

// TestMirrorClassifiesBinary tests that non-text entries become explicit
// binary nodes carrying the original name, never fake text content.
func TestMirrorClassifiesBinary(t *testing.T) {
	dir := t.TempDir()
	// PNG header followed by invalid UTF-8.
	blob := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0xff, 0xfe}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pic.png"), blob, 0o644))

	v, err := Mirror(dir)
	require.NoError(t, err)

	node, err := v.Lookup("/pic.png")
	require.NoError(t, err)
	assert.Equal(t, KindBinary, node.Kind())
	assert.Equal(t, "pic.png", node.Content())
	assert.NotEmpty(t, node.MIMEType())

	// Binary nodes are not readable as text.
	_, err = v.ReadFile("/pic.png")
	assert.ErrorIs(t, err, ErrNotFile)
}

// TestMirrorMissingPath tests the aggregate load error and that the
// underlying not-exist condition stays inspectable through the wrap, so
// callers can choose the default-skeleton fallback.
func TestMirrorMissingPath(t *testing.T) {
	_, err := Mirror(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestMirrorFileNotDirectory tests that mirroring a plain file fails.
func TestMirrorFileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Mirror(file)
	assert.ErrorIs(t, err, ErrLoad)
}

// TestMirrorKeepsNoBackReference tests that mutating the snapshot does not
// touch the real directory.
func TestMirrorKeepsNoBackReference(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("data"), 0o644))

	v, err := Mirror(dir)
	require.NoError(t, err)
	require.NoError(t, v.Remove("/keep.txt"))

	_, statErr := os.Stat(filepath.Join(dir, "keep.txt"))
	assert.NoError(t, statErr)
}
