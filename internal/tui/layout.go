package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and
// height lines tall, so panes joined with lipgloss keep a fixed grid.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	} else {
		return ""
	}

	for i, ln := range lines {
		lines[i] = fitLine(ln, width)
	}
	return strings.Join(lines, "\n")
}

// fitLine cuts (with an ellipsis) or pads ln to exactly width cells.
func fitLine(ln string, width int) string {
	if width <= 0 {
		return ""
	}
	// Bound the cost of measuring pathological lines.
	if len(ln) > 8192 {
		ln = xansi.Cut(ln, 0, width+1)
	}
	w := xansi.StringWidth(ln)
	if w > width {
		if width == 1 {
			ln = xansi.Cut(ln, 0, 1)
		} else {
			ln = xansi.Cut(ln, 0, width-1) + "…"
		}
		w = xansi.StringWidth(ln)
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}

// blankPane is a width x height block of spaces.
func blankPane(width, height int) string {
	return normalizePane("", width, height)
}

// centerLines centers each line of s within width, then pads to height with
// the block vertically centred.
func centerLines(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w < width {
			ln = strings.Repeat(" ", (width-w)/2) + ln
		}
		lines[i] = ln
	}
	if pad := (height - len(lines)) / 2; pad > 0 {
		lines = append(make([]string, pad), lines...)
	}
	return normalizePane(strings.Join(lines, "\n"), width, height)
}
