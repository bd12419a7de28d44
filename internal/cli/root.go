package cli

import (
	"fmt"
	"os"
	"strings"

	"todo-cli/internal/config"
	"todo-cli/internal/format"
	"todo-cli/internal/model"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath   string
	Filter       string
	TracePath    string
	LogPath      string
	NoAnimations bool
	PrettyJSON   bool
	Format       string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "Terminal to-do list",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  todo

  # Start on the active items and record a session trace
  todo --filter active --trace ~/todo-trace.db

  # Inspect what a traced session did
  todo trace show ~/todo-trace.db --limit 20
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("TODO_CONFIG", ""), "Path to config.yaml (default: <user config dir>/todo/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.Filter, "filter", envOr("TODO_FILTER", ""), "Initial filter (all|active|completed)")
	cmd.PersistentFlags().StringVar(&app.TracePath, "trace", envOr("TODO_TRACE", ""), "Record change events to this sqlite file")
	cmd.PersistentFlags().StringVar(&app.LogPath, "log", envOr("TODO_LOG", ""), "Write JSON logs to this file")
	cmd.PersistentFlags().BoolVar(&app.NoAnimations, "no-animations", false, "Disable enter/exit row animations")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TODO_FORMAT", "json"), "Output format (json|yaml)")

	cmd.AddCommand(newVersionCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newTraceCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

// loadConfig resolves the effective config: flags > env > file > defaults.
func loadConfig(app *App) (*config.Config, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)

	if app.Filter != "" {
		if _, err := model.ParseFilter(app.Filter); err != nil {
			return nil, fmt.Errorf("--filter: %w", err)
		}
		cfg.InitialFilter = app.Filter
	}
	if app.TracePath != "" {
		cfg.TracePath = app.TracePath
	}
	if app.LogPath != "" {
		cfg.LogPath = app.LogPath
	}
	if app.NoAnimations {
		cfg.Animations = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
