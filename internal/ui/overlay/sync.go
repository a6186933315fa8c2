package overlay

import "github.com/zjrosen/inkwell/internal/log"

// Offset is a scroll position in rows and display cells.
type Offset struct {
	Top  int
	Left int
}

// Scroller is a layer with a scroll position.
type Scroller interface {
	ScrollOffset() Offset
	SetScrollOffset(Offset)
}

// Sync keeps the render layer scrolled exactly like the input layer. The
// input layer owns the position; the render layer only follows.
type Sync struct {
	input  Scroller
	render Scroller
}

// NewSync pairs an input layer with the render layer drawn beneath it.
func NewSync(input, render Scroller) *Sync {
	return &Sync{input: input, render: render}
}

// Apply copies the input layer's offset onto the render layer. Call it
// after every scroll and every content change, before the next View. It
// reports whether the render layer had drifted.
func (s *Sync) Apply() bool {
	want := s.input.ScrollOffset()
	got := s.render.ScrollOffset()
	if want == got {
		return false
	}
	s.render.SetScrollOffset(want)
	log.Debug(log.CatUI, "Render layer scroll corrected",
		"top", want.Top, "left", want.Left,
		"was_top", got.Top, "was_left", got.Left)
	return true
}

// Metrics are the text metrics both layers must share for a cell in one
// layer to be the same cell in the other. Neither layer wraps lines.
type Metrics struct {
	Width    int // visible cells per row
	Height   int // visible rows
	TabWidth int // cells per tab stop
}

// Follow returns the smallest change to o that keeps the cell at (row,
// cell) visible.
func (m Metrics) Follow(o Offset, row, cell int) Offset {
	if m.Height > 0 {
		if row < o.Top {
			o.Top = row
		} else if row >= o.Top+m.Height {
			o.Top = row - m.Height + 1
		}
	}
	if m.Width > 0 {
		if cell < o.Left {
			o.Left = cell
		} else if cell >= o.Left+m.Width {
			o.Left = cell - m.Width + 1
		}
	}
	o.Top = max(o.Top, 0)
	o.Left = max(o.Left, 0)
	return o
}
