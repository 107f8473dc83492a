package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/vfshell/vfshell/internal/audit"
	"github.com/vfshell/vfshell/internal/infrastructure/config"
	"github.com/vfshell/vfshell/internal/infrastructure/logging"
	"github.com/vfshell/vfshell/internal/infrastructure/monitoring"
	"github.com/vfshell/vfshell/internal/shared/identity"
	"github.com/vfshell/vfshell/internal/shell"
	"github.com/vfshell/vfshell/internal/vfs"
)

func main() {
	vfsPath := flag.String("vfs-path", "", "Physical directory to mirror into the VFS")
	logPath := flag.String("log-path", "", "CSV audit log file")
	scriptPath := flag.String("script-path", "", "Startup script executed before interactive input")
	configPath := flag.String("config-path", "", "YAML or TOML configuration file")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *configPath != "" {
		if err := cfg.MergeFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Overlay(*vfsPath, *logPath, *scriptPath)

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.String("vfs_path", cfg.VFSPath),
		zap.String("log_path", cfg.LogPath),
		zap.String("script_path", cfg.ScriptPath),
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("shell failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *logging.Logger) error {
	fs, err := buildVFS(cfg.VFSPath)
	if err != nil {
		return err
	}

	var recorder audit.Recorder = audit.Nop{}
	if cfg.LogPath != "" {
		csvRec, err := audit.OpenCSV(cfg.LogPath)
		if err != nil {
			return err
		}
		defer csvRec.Close()
		recorder = csvRec
	}

	metrics := monitoring.New(prometheus.DefaultRegisterer)
	session := shell.NewSession(fs, shell.Options{
		Identity: identity.NewHost(),
		Audit:    recorder,
		Logger:   logger,
		Metrics:  metrics,
	})

	ui := newConsole(session, os.Stdin, os.Stdout)
	ui.printMOTD()

	ctx := context.Background()
	if cfg.ScriptPath != "" {
		if err := runStartupScript(ctx, ui, cfg.ScriptPath, metrics); err != nil {
			logger.Warn("startup script failed", zap.Error(err))
		}
		if session.Closed() {
			return nil
		}
	}

	return ui.loop(ctx)
}

// buildVFS mirrors the configured physical directory, or falls back to the
// default skeleton when none is configured or the path does not exist.
func buildVFS(path string) (*vfs.VFS, error) {
	if path == "" {
		return vfs.NewDefault(), nil
	}
	v, err := vfs.Mirror(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return vfs.NewDefault(), nil
		}
		return nil, err
	}
	return v, nil
}

// runStartupScript feeds the script file through the fail-fast runner,
// echoing each line the way the interactive prompt would.
func runStartupScript(ctx context.Context, c *console, path string, metrics *monitoring.Metrics) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read startup script: %w", err)
	}

	runner := shell.NewRunner(c)
	runner.Echo = func(line int, text string) {
		fmt.Fprintf(c.out, "[script:%d] > %s\n", line, text)
	}
	err = runner.Run(ctx, strings.Split(string(data), "\n"))
	metrics.ObserveScript(err != nil)
	if err != nil {
		fmt.Fprintf(c.out, "%v\n", err)
	}
	return err
}
