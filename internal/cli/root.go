package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tiwariParth/tasklist/internal/config"
	"github.com/tiwariParth/tasklist/internal/task"
	"github.com/tiwariParth/tasklist/internal/ui"
)

type rootOptions struct {
	configPath string
	priority   string
	noColor    bool
	logLevel   string
}

// NewRootCmd builds the command tree. The shell is the default action.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "Todo - an in-memory task list",
		Long: `Todo keeps a prioritized task list for the length of one session.

Tasks are never written to disk; quitting discards them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVarP(&opts.priority, "priority", "p", "", "Initial priority for new tasks (low, medium, high)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Manage tasks from an interactive prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Manage tasks in a full-screen terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, manager, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer manager.Close()
			return ui.Run(manager, ui.Options{ConfirmDelete: cfg.ConfirmDelete})
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todo %s\n", version)
		},
	}

	rootCmd.AddCommand(shellCmd, tuiCmd, versionCmd)
	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func runShell(cmd *cobra.Command, opts *rootOptions) error {
	cfg, manager, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer manager.Close()

	shell := NewShell(manager, cmd.InOrStdin(), cmd.OutOrStdout(), ShellOptions{
		Color:         cfg.Color,
		ConfirmDelete: cfg.ConfirmDelete,
	})
	defer shell.Close()
	return shell.Run()
}

// setup loads configuration, applies flag overrides and builds the manager.
func setup(cmd *cobra.Command, opts *rootOptions) (*config.Config, *task.Manager, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("priority") {
		cfg.DefaultPriority = opts.priority
	}
	if flags.Changed("no-color") {
		cfg.Color = !opts.noColor
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("configuration loaded",
		"config", opts.configPath,
		"default_priority", cfg.DefaultPriority,
		"date_layout", cfg.DateLayout)

	manager := task.NewManager(
		task.WithDefaultPriority(cfg.Priority()),
		task.WithDateLayout(cfg.DateLayout),
		task.WithLogger(logger),
	)
	return cfg, manager, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
