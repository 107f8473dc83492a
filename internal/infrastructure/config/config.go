// Package config holds session configuration loaded from the environment
// and an optional YAML or TOML file. Precedence is flags > file > env;
// flag overlay belongs to the cmd layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all shell configuration.
type Config struct {
	// VFSPath is the physical directory mirrored into the VFS at startup;
	// empty selects the built-in default skeleton.
	VFSPath string `envconfig:"VFS_PATH" yaml:"vfs_path" toml:"vfs_path"`
	// LogPath is the CSV audit log location; empty disables audit logging.
	LogPath string `envconfig:"LOG_PATH" yaml:"log_path" toml:"log_path"`
	// ScriptPath is the startup script executed before interactive input.
	ScriptPath string `envconfig:"SCRIPT_PATH" yaml:"script_path" toml:"script_path"`

	Logging LogConfig `yaml:"logging" toml:"logging"`
}

// LogConfig holds structured-logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" yaml:"level" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" yaml:"development" toml:"development"`
}

// Load reads configuration from VFSHELL_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("vfshell", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads from the environment or falls back to defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{Level: "info"},
	}
}

// MergeFile overlays settings from a YAML or TOML file, selected by
// extension, onto cfg. Values present in the file win over the current
// ones; fields the file omits are left untouched.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	file := *c
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return fmt.Errorf("unsupported config format: %s", path)
	}
	if err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	*c = file
	return nil
}

// Overlay applies non-empty override values, used by the cmd layer to give
// command-line flags the final word.
func (c *Config) Overlay(vfsPath, logPath, scriptPath string) {
	if vfsPath != "" {
		c.VFSPath = vfsPath
	}
	if logPath != "" {
		c.LogPath = logPath
	}
	if scriptPath != "" {
		c.ScriptPath = scriptPath
	}
}
