// Package main provides the mathdesk CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mathdesk/cmd/mathdesk/menu"
	"mathdesk/internal/config"
	"mathdesk/internal/logging"
)

var (
	// Global flags
	verbose    bool
	plainMode  bool
	configPath string

	// Logger for one-shot commands. The interactive shells log to
	// files instead; stdout and stderr belong to them.
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mathdesk",
	Short: "mathdesk - an arithmetic workbench for the terminal",
	Long: `mathdesk is an interactive console menu over twenty arithmetic and
logic operations: parity, GCD, primality, Fibonacci, perfect numbers,
and friends. Each operation validates its own inputs and returns either
a computed value or a descriptive error.

Run without arguments to start the interactive menu. Use "run" for
one-shot invocations that fit in scripts and pipelines.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive shells own the terminal; no stderr logger.
		if cmd.Name() == "mathdesk" {
			return nil
		}

		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell()
	},
}

const version = "1.0.0"

// runShell loads configuration and starts the selected shell.
func runShell() error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logDir, err := logging.DefaultDir()
	if err != nil {
		logDir = ""
	}
	if err := logging.Initialize(logDir, cfg.Logging.DebugMode, cfg.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
	}
	defer logging.Close()

	if plainMode || cfg.Plain {
		return menu.NewPlainShell(os.Stdin, os.Stdout).Run()
	}

	// Hot reload is best effort; the TUI runs fine without it.
	var watcher *config.Watcher
	if w, err := config.NewWatcher(path); err == nil {
		if err := w.Start(context.Background()); err == nil {
			watcher = w
			defer func() { _ = w.Close() }()
		} else {
			_ = w.Close()
			logging.Get(logging.CategoryConfig).Warn("config watch unavailable: %v", err)
		}
	}

	return menu.Run(cfg, watcher)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: ~/.config/mathdesk/config.yaml)")
	rootCmd.Flags().BoolVar(&plainMode, "plain", false, "use the line-mode shell instead of the TUI")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(describeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
