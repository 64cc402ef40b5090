// Package cli holds the cobra commands of the diagrail binary.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/wesen/diagrail/internal/config"
	"github.com/wesen/diagrail/internal/plugins"
)

const (
	// Version is the current version of diagrail
	Version = "0.1.0"
)

// app is the state shared by every subcommand once the persistent flags
// are parsed.
type app struct {
	configPath string
	debug      bool
	logFile    string

	cfg     config.Config
	logger  *slog.Logger
	closers []io.Closer

	// run drives the terminal program; tests replace it.
	run func(m tea.Model) error
}

// NewRootCommand creates the root cobra command for diagrail. Running it
// without a subcommand opens the editor.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{run: runProgram})
}

func newRootCommand(a *app) *cobra.Command {
	edit := newEditCommand(a)
	cmd := &cobra.Command{
		Use:   "diagrail",
		Short: "diagrail - a terminal diagram editor",
		Long: `diagrail is a mouse-driven diagram editor for the terminal. Diagram types
are plugins: the built-in flowchart and sequence types, or YAML files whose
connection rules are JavaScript expressions.

Configuration is read from --config, $DIAGRAIL_CONFIG or
~/.diagrail/config.yaml, in that order.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: edit.RunE,
	}
	cmd.Flags().AddFlagSet(edit.Flags())

	// Persistent flags (available to all subcommands)
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ~/.diagrail/config.yaml)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Write logs to this file (the editor owns the terminal)")

	cmd.AddCommand(edit)
	cmd.AddCommand(newPluginsCommand(a))
	cmd.AddCommand(newPluginCommand(a))

	return cmd
}

// init loads the configuration and sets up logging.
func (a *app) init() error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.debug {
		level = slog.LevelDebug
	}

	var out io.Writer = io.Discard
	if a.logFile != "" {
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		out = f
	}
	a.logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	if cfg.Path != "" {
		a.logger.Debug("config loaded", "path", cfg.Path)
	}
	return nil
}

func (a *app) close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// registry returns the built-in plugins plus those named in the config.
func (a *app) registry() (*plugins.Registry, error) {
	reg := plugins.Builtin()
	if err := reg.LoadFiles(a.cfg.PluginFiles...); err != nil {
		return nil, fmt.Errorf("failed to load plugins: %w", err)
	}
	return reg, nil
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
