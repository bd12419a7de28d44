package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"todo-cli/internal/docs"
	"todo-cli/internal/tui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const docsWrapWidth = 80

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := docs.Topics()
				sort.Strings(topics)
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": topics}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("%w (run `todo docs` to list topics)", errNotFound("docs topic", topic)))
			}

			out := cmd.OutOrStdout()
			if asHTML {
				_, err := fmt.Fprintln(out, strings.TrimRight(docs.HTML(body), "\n"))
				return err
			}
			if !raw && isTerminal(out) {
				body = tui.RenderMarkdown(body, docsWrapWidth) + "\n"
			}
			_, err := fmt.Fprint(out, body)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown even on a terminal")
	cmd.Flags().BoolVar(&asHTML, "html", false, "Print the topic as an HTML fragment")

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
