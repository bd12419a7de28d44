package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"todo-cli/internal/config"
	"todo-cli/internal/journal"
	"todo-cli/internal/logging"
	"todo-cli/internal/todo"
	"todo-cli/internal/tui"

	"github.com/spf13/cobra"
)

// runProgram is swapped out in tests so the wiring can be checked without a terminal.
var runProgram = tui.Run

func runTUI(cmd *cobra.Command, app *App) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return writeErr(cmd, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, closer, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closer.Close()

	st := todo.NewState(
		todo.WithLogger(log),
		todo.WithStrict(cfg.Strict),
		todo.WithFilter(cfg.Filter()),
	)

	if cfg.TracePath != "" {
		j, err := journal.Open(ctx, cfg.TracePath, log)
		if err != nil {
			return writeErr(cmd, err)
		}
		defer j.Close()
		cancel := st.OnChange(j.Listener(ctx))
		defer cancel()
	}

	log.Info("session start", "filter", string(st.Filter()), "animations", cfg.Animations, "trace", cfg.TracePath != "")
	err = runProgram(ctx, st, tuiOptions(cfg, log))
	log.Info("session end", "items", st.Len())
	if err != nil && ctx.Err() == nil {
		return writeErr(cmd, err)
	}
	return nil
}

func tuiOptions(cfg *config.Config, log *slog.Logger) tui.Options {
	return tui.Options{
		Animations:         cfg.Animations,
		ClearInputOnSubmit: cfg.ClearInputOnSubmit,
		Theme:              cfg.Theme,
		Glyphs:             cfg.Glyphs,
		Logger:             log,
	}
}
