package editor

import (
	"unicode"

	"github.com/zjrosen/inkwell/internal/buffer"
	"github.com/zjrosen/inkwell/internal/ui/overlay"
)

// inputLayer owns the document, the caret, the selection anchor and the
// scroll position. It draws nothing but the caret.
type inputLayer struct {
	buf    *buffer.Buffer
	caret  int // rune offset
	anchor int // other end of the selection; equals caret when nothing is selected
	goal   int // display cell kept across vertical moves, -1 when unset
	offset overlay.Offset
}

func newInputLayer(text string) *inputLayer {
	return &inputLayer{buf: buffer.New(text), goal: -1}
}

func (l *inputLayer) ScrollOffset() overlay.Offset { return l.offset }

func (l *inputLayer) SetScrollOffset(o overlay.Offset) { l.offset = o }

func (l *inputLayer) selection() buffer.Selection {
	return buffer.Selection{Start: l.anchor, End: l.caret}.Normalize()
}

// setCaret moves the caret and drops the selection.
func (l *inputLayer) setCaret(offset int) {
	l.caret = l.buf.Clamp(offset)
	l.anchor = l.caret
	l.goal = -1
}

// moveTo moves the caret, keeping the anchor when extend is set.
func (l *inputLayer) moveTo(offset int, extend bool) {
	l.caret = l.buf.Clamp(offset)
	if !extend {
		l.anchor = l.caret
	}
}

func (l *inputLayer) selectAll() {
	l.anchor = 0
	l.caret = l.buf.Len()
	l.goal = -1
}

// prevOffset is the start of the grapheme before offset, crossing lines.
func (l *inputLayer) prevOffset(offset int) int {
	row, col := l.buf.Position(offset)
	if col == 0 {
		return max(offset-1, 0)
	}
	return l.buf.Offset(row, buffer.PrevBoundary(l.buf.Line(row), col))
}

// nextOffset is the start of the grapheme after offset, crossing lines.
func (l *inputLayer) nextOffset(offset int) int {
	row, col := l.buf.Position(offset)
	line := l.buf.Line(row)
	if col >= len([]rune(line)) {
		return min(offset+1, l.buf.Len())
	}
	return l.buf.Offset(row, buffer.NextBoundary(line, col))
}

func (l *inputLayer) left(extend bool) {
	l.goal = -1
	if sel := l.selection(); !extend && !sel.Empty() {
		l.moveTo(sel.Start, false)
		return
	}
	l.moveTo(l.prevOffset(l.caret), extend)
}

func (l *inputLayer) right(extend bool) {
	l.goal = -1
	if sel := l.selection(); !extend && !sel.Empty() {
		l.moveTo(sel.End, false)
		return
	}
	l.moveTo(l.nextOffset(l.caret), extend)
}

// vertical moves the caret by rows, keeping the display cell it started
// from. Moving past the first or last row goes to the document edge.
func (l *inputLayer) vertical(rows, tabWidth int, extend bool) {
	row, col := l.buf.Position(l.caret)
	if l.goal < 0 {
		l.goal = buffer.DisplayColumn(l.buf.Line(row), col, tabWidth)
	}

	target := row + rows
	switch {
	case target < 0:
		l.moveTo(0, extend)
		return
	case target >= l.buf.LineCount():
		l.moveTo(l.buf.Len(), extend)
		return
	}
	col = buffer.ColumnAt(l.buf.Line(target), l.goal, tabWidth)
	l.moveTo(l.buf.Offset(target, col), extend)
}

func (l *inputLayer) home(extend bool) {
	l.goal = -1
	l.moveTo(l.buf.LineStart(l.caret), extend)
}

func (l *inputLayer) end(extend bool) {
	l.goal = -1
	l.moveTo(l.buf.LineEnd(l.caret), extend)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordLeft moves to the start of the previous word.
func (l *inputLayer) wordLeft(extend bool) {
	l.goal = -1
	runes := []rune(l.buf.Text())
	i := l.caret
	for i > 0 && !isWordRune(runes[i-1]) {
		i--
	}
	for i > 0 && isWordRune(runes[i-1]) {
		i--
	}
	l.moveTo(i, extend)
}

// wordRight moves past the end of the next word.
func (l *inputLayer) wordRight(extend bool) {
	l.goal = -1
	runes := []rune(l.buf.Text())
	i := l.caret
	for i < len(runes) && !isWordRune(runes[i]) {
		i++
	}
	for i < len(runes) && isWordRune(runes[i]) {
		i++
	}
	l.moveTo(i, extend)
}

// caretCell returns the caret's row and display cell.
func (l *inputLayer) caretCell(tabWidth int) (row, cell int) {
	row, col := l.buf.Position(l.caret)
	return row, buffer.DisplayColumn(l.buf.Line(row), col, tabWidth)
}

// caretGlyph is the grapheme under the caret, or a space at a line end or
// on a tab.
func (l *inputLayer) caretGlyph() string {
	row, col := l.buf.Position(l.caret)
	line := []rune(l.buf.Line(row))
	if col >= len(line) {
		return " "
	}
	g := string(line[col:buffer.NextBoundary(string(line), col)])
	if g == "\t" || g == "\r" {
		return " "
	}
	return g
}

// follow scrolls just enough to keep the caret visible, all of it when the
// caret sits on a wide grapheme.
func (l *inputLayer) follow(m overlay.Metrics) {
	row, cell := l.caretCell(m.TabWidth)
	if w := buffer.GraphemeWidth(l.caretGlyph()); w > 1 {
		l.offset = m.Follow(l.offset, row, cell+w-1)
	}
	l.offset = m.Follow(l.offset, row, cell)
}

// scroll moves the view by rows without moving the caret.
func (l *inputLayer) scroll(rows int, m overlay.Metrics) {
	maxTop := max(l.buf.LineCount()-m.Height, 0)
	l.offset.Top = min(max(l.offset.Top+rows, 0), maxTop)
}

// View reports where the caret is drawn inside the viewport. ok is false
// when the caret is scrolled out of view.
func (l *inputLayer) View(m overlay.Metrics) (row, col int, ok bool) {
	r, c := l.caretCell(m.TabWidth)
	row, col = r-l.offset.Top, c-l.offset.Left
	return row, col, row >= 0 && row < m.Height && col >= 0 && col < m.Width
}
