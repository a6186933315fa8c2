// Package buffer holds the document being edited.
//
// All offsets are rune offsets into the document. Out-of-range offsets are
// clamped rather than rejected so that callers driven by key presses never
// have to guard against the edges of the text.
package buffer

// Buffer is an editable document.
type Buffer struct {
	runes   []rune
	version int
}

// New creates a buffer holding text.
func New(text string) *Buffer {
	return &Buffer{runes: []rune(text)}
}

// Text returns the whole document.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Snapshot returns the document as an immutable string. The highlighter
// reads one snapshot per pass while edits continue on the buffer.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{Text: string(b.runes), Version: b.version}
}

// Snapshot is the document at one version.
type Snapshot struct {
	Text    string
	Version int
}

// Len returns the document length in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Version increments on every change.
func (b *Buffer) Version() int {
	return b.version
}

// Set replaces the whole document.
func (b *Buffer) Set(text string) {
	b.runes = []rune(text)
	b.version++
}

// Slice returns the text in [start, end).
func (b *Buffer) Slice(start, end int) string {
	start, end = b.clampRange(start, end)
	return string(b.runes[start:end])
}

// Replace swaps the text in [start, end) for text and returns the offset just
// after the inserted text.
func (b *Buffer) Replace(start, end int, text string) int {
	start, end = b.clampRange(start, end)
	ins := []rune(text)

	out := make([]rune, 0, len(b.runes)-(end-start)+len(ins))
	out = append(out, b.runes[:start]...)
	out = append(out, ins...)
	out = append(out, b.runes[end:]...)
	b.runes = out
	b.version++
	return start + len(ins)
}

// Insert inserts text at offset and returns the offset after it.
func (b *Buffer) Insert(offset int, text string) int {
	return b.Replace(offset, offset, text)
}

// Delete removes [start, end).
func (b *Buffer) Delete(start, end int) {
	b.Replace(start, end, "")
}

// Clamp limits offset to [0, Len()].
func (b *Buffer) Clamp(offset int) int {
	return clamp(offset, 0, len(b.runes))
}

func (b *Buffer) clampRange(start, end int) (int, int) {
	start, end = b.Clamp(start), b.Clamp(end)
	if start > end {
		start, end = end, start
	}
	return start, end
}

// LineStart returns the offset of the first rune of the line holding offset.
func (b *Buffer) LineStart(offset int) int {
	offset = b.Clamp(offset)
	for offset > 0 && b.runes[offset-1] != '\n' {
		offset--
	}
	return offset
}

// LineEnd returns the offset of the newline ending the line holding offset,
// or Len() on the last line.
func (b *Buffer) LineEnd(offset int) int {
	offset = b.Clamp(offset)
	for offset < len(b.runes) && b.runes[offset] != '\n' {
		offset++
	}
	return offset
}

// LineCount returns the number of '\n'-separated lines. An empty document
// has one line.
func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.runes {
		if r == '\n' {
			n++
		}
	}
	return n
}

// Line returns row without its newline, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 {
		return ""
	}
	start := 0
	for r := 0; r < row; r++ {
		end := b.LineEnd(start)
		if end >= len(b.runes) {
			return ""
		}
		start = end + 1
	}
	return string(b.runes[start:b.LineEnd(start)])
}

// Position converts offset to a zero-based row and rune column.
func (b *Buffer) Position(offset int) (row, col int) {
	offset = b.Clamp(offset)
	lineStart := 0
	for i := 0; i < offset; i++ {
		if b.runes[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}
	return row, offset - lineStart
}

// Offset converts a row and rune column to an offset. A row past the end
// maps to Len() and a column past the end of its line maps to the line end.
func (b *Buffer) Offset(row, col int) int {
	if row < 0 {
		return 0
	}
	start := 0
	for r := 0; r < row; r++ {
		end := b.LineEnd(start)
		if end >= len(b.runes) {
			return len(b.runes)
		}
		start = end + 1
	}
	end := b.LineEnd(start)
	return start + clamp(col, 0, end-start)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
