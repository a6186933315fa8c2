package buffer

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a non-positive tab width.
const DefaultTabWidth = 4

// boundaries returns the rune offsets at which grapheme clusters start in
// s, followed by the rune length of s.
func boundaries(s string) []int {
	out := []int{0}
	state := -1
	pos := 0
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		pos += len([]rune(cluster))
		out = append(out, pos)
	}
	return out
}

// NextBoundary returns the rune column of the grapheme after col in line.
// Combined emoji and accented letters move as one unit.
func NextBoundary(line string, col int) int {
	for _, b := range boundaries(line) {
		if b > col {
			return b
		}
	}
	return len([]rune(line))
}

// PrevBoundary returns the rune column of the grapheme before col in line.
func PrevBoundary(line string, col int) int {
	prev := 0
	for _, b := range boundaries(line) {
		if b >= col {
			return prev
		}
		prev = b
	}
	return prev
}

// GraphemeCount returns the number of user-perceived characters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeWidth returns the cell width of one grapheme cluster.
// ASCII is 1, emoji and CJK are 2.
func GraphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	return runewidth.StringWidth(cluster)
}

func tabStop(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return tabWidth - col%tabWidth
}

// ExpandTabs replaces tabs in s with spaces up to the next tab stop. startCol
// is the display column s begins at. It returns the expanded text and the
// display column after it.
func ExpandTabs(s string, startCol, tabWidth int) (string, int) {
	col := startCol
	if !strings.Contains(s, "\t") {
		return s, col + runewidth.StringWidth(s)
	}
	var b strings.Builder
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		if cluster == "\t" {
			n := tabStop(col, tabWidth)
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteString(cluster)
		col += GraphemeWidth(cluster)
	}
	return b.String(), col
}

// DisplayColumn returns the cell column at which rune column col of line is
// drawn, with tabs expanded.
func DisplayColumn(line string, col, tabWidth int) int {
	runes := []rune(line)
	if col > len(runes) {
		col = len(runes)
	}
	_, width := ExpandTabs(string(runes[:col]), 0, tabWidth)
	return width
}

// ColumnAt returns the rune column of the grapheme drawn at display column
// cell, for moving the caret vertically between lines of different widths.
// A cell inside a wide grapheme or tab resolves to that grapheme's start.
func ColumnAt(line string, cell, tabWidth int) int {
	width, runeCol := 0, 0
	state := -1
	s := line
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		w := GraphemeWidth(cluster)
		if cluster == "\t" {
			w = tabStop(width, tabWidth)
		}
		if width+w > cell {
			return runeCol
		}
		width += w
		runeCol += len([]rune(cluster))
	}
	return runeCol
}
