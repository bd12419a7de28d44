package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and
// height lines tall, so the viewport never wraps or jitters.
// height <= 0 keeps the line count as is.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, ln := range lines {
		lines[i] = fitLine(ln, width)
	}
	return strings.Join(lines, "\n")
}

// fitLine truncates (with an ellipsis) or pads ln to exactly width columns.
func fitLine(ln string, width int) string {
	w := xansi.StringWidth(ln)
	if w > width {
		switch {
		case width <= 0:
			return ""
		case width == 1:
			ln = xansi.Cut(ln, 0, 1)
		default:
			ln = xansi.Truncate(ln, width, "…")
		}
		w = xansi.StringWidth(ln)
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}

// revealLine keeps the first fraction of ln's columns and blanks the rest.
func revealLine(ln string, width int, fraction float64) string {
	if fraction >= 1 {
		return fitLine(ln, width)
	}
	if fraction <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	n := int(float64(width)*fraction + 0.5)
	return fitLine(xansi.Cut(ln, 0, n)+"\x1b[0m", width)
}
