package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws the title field as a single full-width band. The band
// uses the accent color while the field has focus.
func renderInputLine(bodyW int, inputView string, focused bool) string {
	if bodyW < 10 {
		bodyW = 10
	}

	// Stray newlines (or cursor styling overflow) would wrap the band while typing.
	inputView = strings.NewReplacer("\n", " ", "\r", " ").Replace(inputView)

	marker := lipgloss.NewStyle().Foreground(colorMuted).Render(" ")
	if focused {
		marker = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("▌")
	}

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		marker+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Cut and terminate styling so the background doesn't bleed into the next line.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}
