package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/inkwell/internal/buffer"
	"github.com/zjrosen/inkwell/internal/highlight"
	"github.com/zjrosen/inkwell/internal/ui/overlay"
	"github.com/zjrosen/inkwell/internal/ui/styles"
)

// renderLayer draws the highlighted document beneath the input layer. Its
// scroll offset is only ever set by overlay.Sync.
type renderLayer struct {
	lines   []highlight.Line
	version int // buffer version the lines were built from, -1 before the first pass
	offset  overlay.Offset
}

func newRenderLayer() *renderLayer {
	return &renderLayer{version: -1}
}

func (r *renderLayer) ScrollOffset() overlay.Offset { return r.offset }

func (r *renderLayer) SetScrollOffset(o overlay.Offset) { r.offset = o }

// span is a run of text drawn in one style.
type span struct {
	text     string
	tag      highlight.Tag
	selected bool
}

// selectedCols is the selected rune range of one row, as [from, to).
// newline reports whether the row's line break is selected too.
type selectedCols struct {
	from, to int
	newline  bool
}

// selectionRows converts a rune selection into per-row column ranges.
func selectionRows(b *buffer.Buffer, sel buffer.Selection) func(row int) (selectedCols, bool) {
	if sel.Empty() {
		return func(int) (selectedCols, bool) { return selectedCols{}, false }
	}
	sr, sc := b.Position(sel.Start)
	er, ec := b.Position(sel.End)
	return func(row int) (selectedCols, bool) {
		if row < sr || row > er {
			return selectedCols{}, false
		}
		cols := selectedCols{from: 0, to: len([]rune(b.Line(row))), newline: row < er}
		if row == sr {
			cols.from = sc
		}
		if row == er {
			cols.to = ec
		}
		return cols, true
	}
}

// splitSelected cuts a line's spans at the selection bounds.
func splitSelected(line highlight.Line, cols selectedCols, hasSel bool) []span {
	out := make([]span, 0, len(line))
	pos := 0
	for _, s := range line {
		runes := []rune(s.Text)
		start, end := pos, pos+len(runes)
		pos = end
		if !hasSel || cols.to <= start || cols.from >= end {
			out = append(out, span{text: s.Text, tag: s.Tag})
			continue
		}
		a := max(cols.from, start) - start
		b := min(cols.to, end) - start
		if a > 0 {
			out = append(out, span{text: string(runes[:a]), tag: s.Tag})
		}
		out = append(out, span{text: string(runes[a:b]), tag: s.Tag, selected: true})
		if b < len(runes) {
			out = append(out, span{text: string(runes[b:]), tag: s.Tag})
		}
	}
	return out
}

func spanStyle(tag highlight.Tag, selected bool) lipgloss.Style {
	st := styles.TextStyle
	if tag != highlight.TagNone {
		st = styles.ForTag(tag)
	}
	if selected {
		st = st.Background(styles.SelectionBgColor)
	}
	return st
}

// styleLine renders one document line with tabs expanded from cell 0.
func styleLine(line highlight.Line, cols selectedCols, hasSel bool, tabWidth int) string {
	var b strings.Builder
	cell := 0
	for _, s := range splitSelected(line, cols, hasSel) {
		var text string
		text, cell = buffer.ExpandTabs(s.text, cell, tabWidth)
		text = strings.ReplaceAll(text, "\r", "")
		b.WriteString(spanStyle(s.tag, s.selected).Render(text))
	}
	if hasSel && cols.newline {
		b.WriteString(spanStyle(highlight.TagNone, true).Render(" "))
	}
	return b.String()
}

// View draws the rows and cells of the document inside the viewport.
func (r *renderLayer) View(m overlay.Metrics, selected func(row int) (selectedCols, bool)) string {
	rows := make([]string, m.Height)
	for i := range rows {
		row := r.offset.Top + i
		var styled string
		if row < len(r.lines) {
			cols, hasSel := selected(row)
			styled = styleLine(r.lines[row], cols, hasSel, m.TabWidth)
		}
		rows[i] = overlay.Crop(styled, r.offset.Left, m.Width)
	}
	return strings.Join(rows, "\n")
}

// placeholder draws text on the first row of an empty document.
func placeholder(text string, m overlay.Metrics) string {
	rows := make([]string, m.Height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", m.Width)
	}
	if m.Height > 0 {
		rows[0] = overlay.Crop(styles.PlaceholderStyle.Render(text), 0, m.Width)
	}
	return strings.Join(rows, "\n")
}
