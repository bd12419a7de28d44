package tui

import (
	"strings"

	"todo-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// rowView is everything the renderer needs to draw one to-do row.
type rowView struct {
	id       string
	item     model.Item
	selected bool
	// progress is 0..1 transition progress; 1 is fully shown.
	progress float64
}

func (r rowView) struck() bool { return r.item.Completed }

// renderRow draws: cursor, checkbox, title, remove affordance; exactly width columns.
func renderRow(r rowView, width int) string {
	if width < 12 {
		width = 12
	}

	cursor := " "
	if r.selected {
		cursor = glyphCursor()
	}
	box := glyphCheckbox(r.item.Completed)
	remove := glyphRemove()

	lead := cursor + " " + box + " "
	tail := " " + remove
	titleW := width - xansi.StringWidth(lead) - xansi.StringWidth(tail)
	if titleW < 1 {
		titleW = 1
	}
	title := xansi.Truncate(r.item.Title, titleW, "…")
	pad := strings.Repeat(" ", max(titleW-xansi.StringWidth(title), 0))

	titleStyle := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	boxStyle := lipgloss.NewStyle().Foreground(colorMuted)
	removeStyle := lipgloss.NewStyle().Foreground(colorRemove)
	leadStyle := lipgloss.NewStyle()
	if r.struck() {
		titleStyle = titleStyle.Foreground(colorDone).Strikethrough(true)
		boxStyle = boxStyle.Foreground(colorAccent)
	}
	if r.selected {
		for _, st := range []*lipgloss.Style{&titleStyle, &boxStyle, &removeStyle, &leadStyle} {
			*st = st.Background(colorSelectedBg)
		}
		leadStyle = leadStyle.Foreground(colorSelectedFg).Bold(true)
		if !r.struck() {
			titleStyle = titleStyle.Foreground(colorSelectedFg).Bold(true)
		}
	}

	if r.progress < 1 {
		// Mid-transition rows fade from the background color toward full contrast.
		fade := fadeColor(r.progress)
		titleStyle = titleStyle.Foreground(fade)
		boxStyle = boxStyle.Foreground(fade)
		removeStyle = removeStyle.Foreground(fade)
	}

	line := leadStyle.Render(cursor+" ") +
		boxStyle.Render(box) +
		leadStyle.Render(" ") +
		titleStyle.Render(title) +
		// Padding keeps the row colors but never the strikethrough.
		titleStyle.UnsetStrikethrough().Render(pad) +
		leadStyle.Render(" ") +
		removeStyle.Render(remove)
	return revealLine(line, width, r.progress)
}

func renderEmpty(f model.Filter, width int) string {
	msg := "Nothing here yet. Press a to add an item."
	switch f {
	case model.FilterCompleted:
		msg = "No completed items."
	case model.FilterActive:
		msg = "No active items."
	}
	return fitLine(styleMuted().Render(msg), width)
}
