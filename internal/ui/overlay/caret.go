package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Crop returns the cells [left, left+width) of a styled line, exactly width
// cells wide. A wide grapheme cut by either edge shows as blanks, so every
// other grapheme stays in the cell it has in the unscrolled line. Escape
// sequences are kept wherever they fall.
func Crop(line string, left, width int) string {
	if width <= 0 {
		return ""
	}
	right := left + width

	var b strings.Builder
	var state byte
	cell := 0
	for len(line) > 0 {
		seq, w, n, next := ansi.DecodeSequence(line, state, nil)
		state = next
		line = line[n:]
		if w == 0 {
			b.WriteString(seq)
			continue
		}
		start, end := cell, cell+w
		cell = end
		switch {
		case end <= left || start >= right:
		case start >= left && end <= right:
			b.WriteString(seq)
		default:
			b.WriteString(strings.Repeat(" ", min(end, right)-max(start, left)))
		}
	}
	if drawn := min(max(cell, left), right) - left; drawn < width {
		b.WriteString(strings.Repeat(" ", width-drawn))
	}
	return b.String()
}

// Caret draws cell at (row, col) of bg, replacing whatever the render
// layer drew there. Rows past the end of bg are ignored.
func Caret(bg string, row, col int, cell string) string {
	if row < 0 || col < 0 {
		return bg
	}
	lines := strings.Split(bg, "\n")
	if row >= len(lines) {
		return bg
	}
	lines[row] = splice(lines[row], col, cell)
	return strings.Join(lines, "\n")
}
