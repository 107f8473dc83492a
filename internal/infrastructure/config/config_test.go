package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadFromEnv tests envconfig binding with the VFSHELL prefix.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VFSHELL_VFS_PATH", "/srv/tree")
	t.Setenv("VFSHELL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/tree", cfg.VFSPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Empty(t, cfg.ScriptPath)
}

// TestMergeFileYAML tests YAML overlay keeps values the file omits.
func TestMergeFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vfs_path: /data/tree\nlogging:\n  level: warn\n"), 0o644))

	cfg := Default()
	cfg.ScriptPath = "/etc/startup.vsh"
	require.NoError(t, cfg.MergeFile(path))

	assert.Equal(t, "/data/tree", cfg.VFSPath)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Untouched by the file.
	assert.Equal(t, "/etc/startup.vsh", cfg.ScriptPath)
}

// TestMergeFileTOML tests format selection by extension.
func TestMergeFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_path = \"/var/log/shell.csv\"\n"), 0o644))

	cfg := Default()
	require.NoError(t, cfg.MergeFile(path))
	assert.Equal(t, "/var/log/shell.csv", cfg.LogPath)
}

// TestMergeFileUnsupported tests the extension check.
func TestMergeFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.ini")
	require.NoError(t, os.WriteFile(path, []byte("x=1"), 0o644))

	assert.Error(t, Default().MergeFile(path))
}

// TestOverlay tests that flags override only when set.
func TestOverlay(t *testing.T) {
	cfg := Default()
	cfg.VFSPath = "/from/file"
	cfg.LogPath = "/from/file.csv"

	cfg.Overlay("/from/flag", "", "/flag/script")
	assert.Equal(t, "/from/flag", cfg.VFSPath)
	assert.Equal(t, "/from/file.csv", cfg.LogPath)
	assert.Equal(t, "/flag/script", cfg.ScriptPath)
}
