package tui

import (
	"context"

	"todo-cli/internal/todo"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive list over st and blocks until the user quits or ctx is done.
func Run(ctx context.Context, st *todo.State, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(st, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
