// Package cli wires the cobra commands: the interactive window by default,
// plus a few scriptable commands over the same files.
package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/checklist/internal/config"
	"github.com/idilsaglam/checklist/internal/logging"
	"github.com/idilsaglam/checklist/internal/shell"
	"github.com/idilsaglam/checklist/internal/ui"
)

// App carries root flag values and the state built from them.
type App struct {
	Dir        string
	ConfigPath string
	NoColor    bool
	LogFile    string
	LogLevel   string

	cfg *config.Config
	log *logging.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "checklist",
		Short:         "A tiny checklist that archives what you finish",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs("checklist"),
		Example: strings.TrimSpace(`
  # Open the checklist window
  checklist

  # Scriptable commands
  checklist add "Buy milk"
  checklist ls
  checklist done 2
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.log.Close()
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("CHECKLIST_DIR", ""), "Directory holding the checklist files (default: current directory)")
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("CHECKLIST_CONFIG", ""), "Config file (default: checklist.toml in --dir, if present)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colour output")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Append logs to this file")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDoneCmd(app))

	return cmd
}

// setup loads the configuration, applies flag overrides and opens the logger.
func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(app.Dir, app.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("no-color") {
		cfg.NoColor = app.NoColor
	}
	if flags.Changed("log-file") {
		cfg.LogFile = app.LogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = app.LogLevel
		if err := cfg.Validate(); err != nil {
			return usageErrorf("%v", err)
		}
	}

	ui.SetTheme(cfg.Theme)
	ui.SetColorProfile(cfg.NoColor)

	lg, err := logging.New(logging.Options{
		File:            cfg.LogFile,
		Level:           cfg.LogLevel,
		Format:          cfg.LogFormat,
		ReportTimestamp: cfg.LogTimestamps,
	})
	if err != nil {
		return err
	}
	app.cfg = cfg
	app.log = lg
	return nil
}

func runWindow(ctx context.Context, app *App) error {
	icon, err := ui.LoadIcon(app.cfg.IconPath)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return shell.Run(ctx, shell.Options{
		Store:        app.cfg.Store(),
		Logger:       app.log,
		Theme:        ui.ThemeNamed(app.cfg.Theme),
		Icon:         icon,
		RemovalDelay: app.cfg.RemovalDelay(),
		BottomMargin: app.cfg.BottomMargin,
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
