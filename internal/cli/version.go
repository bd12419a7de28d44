package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X todo-cli/internal/cli.Version=...".
var Version = "dev"

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"version": Version,
				"go":      runtime.Version(),
			}})
		},
	}
}
