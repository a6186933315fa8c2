// Package editor is the markdown editing surface: an input layer that owns
// the text and caret, stacked over a render layer that draws the
// highlighted document. overlay.Sync keeps the two scrolled together so
// every character of the render layer sits under the same character of the
// input layer.
package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/inkwell/internal/buffer"
	"github.com/zjrosen/inkwell/internal/highlight"
	"github.com/zjrosen/inkwell/internal/history"
	"github.com/zjrosen/inkwell/internal/keys"
	"github.com/zjrosen/inkwell/internal/log"
	"github.com/zjrosen/inkwell/internal/toolbar"
	"github.com/zjrosen/inkwell/internal/ui/overlay"
	"github.com/zjrosen/inkwell/internal/ui/styles"
)

// DefaultPlaceholder is shown over an empty document.
const DefaultPlaceholder = "Start writing your markdown here..."

// wheelRows is how far one mouse wheel notch scrolls.
const wheelRows = 3

// Config holds the editor settings.
type Config struct {
	TabWidth     int
	HistoryLimit int
	Placeholder  string
	ShowToolbar  bool
	Highlighter  highlight.Highlighter
	CacheEnabled bool
	CacheTTL     time.Duration
	KeyMap       keys.EditorKeyMap
}

// DefaultConfig returns the editor settings used without a config file.
func DefaultConfig() Config {
	return Config{
		TabWidth:     buffer.DefaultTabWidth,
		HistoryLimit: history.DefaultLimit,
		Placeholder:  DefaultPlaceholder,
		ShowToolbar:  true,
		CacheEnabled: true,
		CacheTTL:     5 * time.Minute,
		KeyMap:       keys.DefaultEditorKeyMap(),
	}
}

// ChangedMsg is sent after an edit changes the document.
type ChangedMsg struct {
	Version int
}

// Model is the editor. Its layers are shared by pointer between copies.
type Model struct {
	cfg     Config
	keys    keys.EditorKeyMap
	input   *inputLayer
	render  *renderLayer
	sync    *overlay.Sync
	cache   *HighlightCache
	history *history.History
	metrics overlay.Metrics
	focused bool
	dirty   bool
}

// New creates an editor holding text.
func New(cfg Config, text string) Model {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = buffer.DefaultTabWidth
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	}

	input := newInputLayer(text)
	render := newRenderLayer()
	m := Model{
		cfg:     cfg,
		keys:    cfg.KeyMap,
		input:   input,
		render:  render,
		sync:    overlay.NewSync(input, render),
		cache:   NewHighlightCache(cfg.Highlighter, cfg.CacheEnabled, cfg.CacheTTL),
		history: history.New(cfg.HistoryLimit),
		metrics: overlay.Metrics{TabWidth: cfg.TabWidth},
		focused: true,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	version := m.input.buf.Version()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m = m.handleKey(msg)
		m.input.follow(m.metrics)
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	default:
		return m, nil
	}

	m.refresh()
	if v := m.input.buf.Version(); v != version {
		return m, func() tea.Msg { return ChangedMsg{Version: v} }
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	k := m.keys
	in := m.input
	tw := m.cfg.TabWidth

	switch {
	case msg.Paste && len(msg.Runes) > 0:
		m.insert(string(msg.Runes))

	case key.Matches(msg, k.Undo):
		m.Undo()
	case key.Matches(msg, k.Redo):
		m.Redo()

	case key.Matches(msg, k.SelectLeft):
		in.left(true)
	case key.Matches(msg, k.SelectRight):
		in.right(true)
	case key.Matches(msg, k.SelectUp):
		in.vertical(-1, tw, true)
	case key.Matches(msg, k.SelectDown):
		in.vertical(1, tw, true)
	case key.Matches(msg, k.SelectHome):
		in.home(true)
	case key.Matches(msg, k.SelectEnd):
		in.end(true)
	case key.Matches(msg, k.SelectAll):
		in.selectAll()

	case key.Matches(msg, k.WordLeft):
		in.wordLeft(false)
	case key.Matches(msg, k.WordRight):
		in.wordRight(false)
	case key.Matches(msg, k.Left):
		in.left(false)
	case key.Matches(msg, k.Right):
		in.right(false)
	case key.Matches(msg, k.Up):
		in.vertical(-1, tw, false)
	case key.Matches(msg, k.Down):
		in.vertical(1, tw, false)
	case key.Matches(msg, k.Home):
		in.home(false)
	case key.Matches(msg, k.End):
		in.end(false)
	case key.Matches(msg, k.PageUp):
		in.vertical(-max(m.metrics.Height, 1), tw, false)
	case key.Matches(msg, k.PageDown):
		in.vertical(max(m.metrics.Height, 1), tw, false)
	case key.Matches(msg, k.DocStart):
		in.setCaret(0)
	case key.Matches(msg, k.DocEnd):
		in.setCaret(in.buf.Len())

	case key.Matches(msg, k.Newline):
		m.insert("\n")
	case key.Matches(msg, k.Backspace):
		m.deleteBack()
	case key.Matches(msg, k.Delete):
		m.deleteForward()
	case key.Matches(msg, k.Indent):
		m.apply(toolbar.Indent(in.buf.Text(), in.selection()))

	case key.Matches(msg, k.Bold):
		m.ApplyAction("bold")
	case key.Matches(msg, k.Italic):
		m.ApplyAction("italic")
	case key.Matches(msg, k.Code):
		m.ApplyAction("code")
	case key.Matches(msg, k.Link):
		m.ApplyAction("link")

	case msg.Type == tea.KeySpace:
		m.insert(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.insert(string(msg.Runes))
	}
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.input.scroll(-wheelRows, m.metrics)
		return m
	case tea.MouseButtonWheelDown:
		m.input.scroll(wheelRows, m.metrics)
		return m
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}

	if m.cfg.ShowToolbar {
		for _, a := range toolbar.All() {
			if z := zone.Get(actionZone(a.ID)); z != nil && z.InBounds(msg) {
				m.ApplyAction(a.ID)
				m.input.follow(m.metrics)
				return m
			}
		}
		if z := zone.Get(zoneUndo); z != nil && z.InBounds(msg) {
			m.Undo()
			m.input.follow(m.metrics)
			return m
		}
		if z := zone.Get(zoneRedo); z != nil && z.InBounds(msg) {
			m.Redo()
			m.input.follow(m.metrics)
			return m
		}
	}
	if z := zone.Get(zoneText); z != nil && z.InBounds(msg) {
		x, y := z.Pos(msg)
		m.ClickAt(y, x)
	}
	return m
}

// ClickAt puts the caret at a viewport row and cell.
func (m *Model) ClickAt(row, cell int) {
	in := m.input
	docRow := min(in.offset.Top+row, in.buf.LineCount()-1)
	col := buffer.ColumnAt(in.buf.Line(docRow), in.offset.Left+cell, m.cfg.TabWidth)
	in.setCaret(in.buf.Offset(docRow, col))
	in.follow(m.metrics)
	m.refresh()
}

// commit records prev in history when the document changed and places the
// caret.
func (m *Model) commit(prev string, caret int) {
	if m.input.buf.Text() == prev {
		m.input.setCaret(caret)
		return
	}
	m.history.Record(prev)
	m.input.setCaret(caret)
	m.dirty = true
}

// insert replaces the selection with text.
func (m *Model) insert(text string) {
	in := m.input
	prev := in.buf.Text()
	sel := in.selection()
	m.commit(prev, in.buf.Replace(sel.Start, sel.End, text))
}

// deleteBack removes the selection, or the grapheme before the caret.
func (m *Model) deleteBack() {
	in := m.input
	sel := in.selection()
	if sel.Empty() {
		if in.caret == 0 {
			return
		}
		sel = buffer.Selection{Start: in.prevOffset(in.caret), End: in.caret}
	}
	prev := in.buf.Text()
	in.buf.Delete(sel.Start, sel.End)
	m.commit(prev, sel.Start)
}

// deleteForward removes the selection, or the grapheme after the caret.
func (m *Model) deleteForward() {
	in := m.input
	sel := in.selection()
	if sel.Empty() {
		if in.caret >= in.buf.Len() {
			return
		}
		sel = buffer.Selection{Start: in.caret, End: in.nextOffset(in.caret)}
	}
	prev := in.buf.Text()
	in.buf.Delete(sel.Start, sel.End)
	m.commit(prev, sel.Start)
}

func (m *Model) apply(res toolbar.Result) {
	prev := m.input.buf.Text()
	m.input.buf.Set(res.Text)
	m.commit(prev, res.Cursor)
}

// ApplyAction runs the toolbar action with the given ID against the
// selection. It reports false for an unknown ID.
func (m *Model) ApplyAction(id string) bool {
	action, ok := toolbar.Lookup(id)
	if !ok {
		log.Warn(log.CatEditor, "Unknown toolbar action", "id", id)
		return false
	}
	m.apply(toolbar.Apply(m.input.buf.Text(), m.input.selection(), action))
	m.refresh()
	return true
}

// Undo restores the previous snapshot.
func (m *Model) Undo() bool {
	return m.step(m.history.Undo)
}

// Redo reapplies the snapshot undone last.
func (m *Model) Redo() bool {
	return m.step(m.history.Redo)
}

func (m *Model) step(fn func(current string) (string, bool)) bool {
	in := m.input
	text, ok := fn(in.buf.Text())
	if !ok {
		return false
	}
	caret := in.caret
	in.buf.Set(text)
	in.setCaret(caret)
	m.dirty = true
	m.refresh()
	return true
}

// CanUndo reports whether Undo would do anything.
func (m Model) CanUndo() bool { return m.history.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (m Model) CanRedo() bool { return m.history.CanRedo() }

// refresh re-highlights when the document changed and realigns the render
// layer. It runs after every update, before the next View.
func (m *Model) refresh() {
	snap := m.input.buf.Snapshot()
	if snap.Version != m.render.version {
		m.render.lines = m.cache.Lines(snap.Text)
		m.render.version = snap.Version
	}
	m.sync.Apply()
}

// View draws the toolbar row and the stacked layers.
func (m Model) View() string {
	if m.metrics.Width <= 0 || m.metrics.Height <= 0 {
		return ""
	}

	var body string
	if m.input.buf.Len() == 0 {
		body = placeholder(m.cfg.Placeholder, m.metrics)
	} else {
		body = m.render.View(m.metrics, selectionRows(m.input.buf, m.input.selection()))
	}

	if m.focused {
		if row, col, ok := m.input.View(m.metrics); ok {
			body = overlay.Caret(body, row, col, styles.CaretStyle.Render(m.input.caretGlyph()))
		}
	}
	body = zone.Mark(zoneText, body)

	if !m.cfg.ShowToolbar {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		toolbarView(m.metrics.Width, m.CanUndo(), m.CanRedo()), body)
}

// SetSize sets the outer size, toolbar row included.
func (m *Model) SetSize(width, height int) {
	if m.cfg.ShowToolbar {
		height--
	}
	m.metrics.Width = max(width, 0)
	m.metrics.Height = max(height, 0)
	m.input.follow(m.metrics)
	m.sync.Apply()
}

// Focus lets the editor take input and show its caret.
func (m *Model) Focus() { m.focused = true }

// Blur stops input handling and hides the caret.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the editor takes input.
func (m Model) Focused() bool { return m.focused }

// Value returns the document.
func (m Model) Value() string { return m.input.buf.Text() }

// Version changes on every edit.
func (m Model) Version() int { return m.input.buf.Version() }

// Dirty reports whether the document was edited since it was loaded.
func (m Model) Dirty() bool { return m.dirty }

// Load replaces the document, as when the file changed on disk. The caret
// follows the text around it. History is cleared and the document counts as
// unedited.
func (m *Model) Load(text string) {
	caret := mapOffset(m.input.buf.Text(), text, m.input.caret)
	m.input.buf.Set(text)
	m.input.setCaret(caret)
	m.history.Clear()
	m.dirty = false
	m.input.follow(m.metrics)
	m.refresh()
}

// Caret returns the caret's rune offset.
func (m Model) Caret() int { return m.input.caret }

// Selection returns the normalized selection.
func (m Model) Selection() buffer.Selection { return m.input.selection() }

// Select sets the selection, anchor first; the caret ends at end.
func (m *Model) Select(anchor, end int) {
	m.input.anchor = m.input.buf.Clamp(anchor)
	m.input.caret = m.input.buf.Clamp(end)
	m.input.goal = -1
	m.input.follow(m.metrics)
	m.refresh()
}

// CaretPosition returns the caret's row and rune column.
func (m Model) CaretPosition() (row, col int) {
	return m.input.buf.Position(m.input.caret)
}

// ScrollOffset returns the input layer's scroll offset.
func (m Model) ScrollOffset() overlay.Offset { return m.input.offset }

// RenderOffset returns the render layer's scroll offset.
func (m Model) RenderOffset() overlay.Offset { return m.render.offset }

// CacheStats returns highlight cache hits and misses.
func (m Model) CacheStats() (hits, misses int64) { return m.cache.Stats() }
