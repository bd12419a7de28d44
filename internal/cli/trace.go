package cli

import (
	"todo-cli/internal/journal"

	"github.com/spf13/cobra"
)

func newTraceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect recorded session traces",
	}
	cmd.AddCommand(newTraceShowCmd(app))
	return cmd
}

func newTraceShowCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Print the most recent trace events, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			records, err := journal.Read(cmd.Context(), path, limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			if records == nil {
				records = []journal.Record{}
			}
			return writeOut(cmd, app, map[string]any{
				"data": records,
				"meta": map[string]any{"path": path, "count": len(records)},
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of events (0 = all)")

	return cmd
}
