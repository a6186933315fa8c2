// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// EditorKeyMap defines the keybindings for the editing surface. Printable
// keys that match nothing here are typed into the buffer.
type EditorKeyMap struct {
	// Caret movement
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	WordLeft  key.Binding
	WordRight key.Binding
	Home      key.Binding
	End       key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	DocStart  key.Binding
	DocEnd    key.Binding

	// Selection
	SelectUp    key.Binding
	SelectDown  key.Binding
	SelectLeft  key.Binding
	SelectRight key.Binding
	SelectHome  key.Binding
	SelectEnd   key.Binding
	SelectAll   key.Binding

	// Editing
	Newline   key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Indent    key.Binding
	Undo      key.Binding
	Redo      key.Binding

	// Formatting shortcuts, resolved through the toolbar actions
	Bold   key.Binding
	Italic key.Binding
	Code   key.Binding
	Link   key.Binding
}

// DefaultEditorKeyMap returns the default editor keybindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "line up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "line down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "back"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "forward"),
		),
		WordLeft: key.NewBinding(
			key.WithKeys("alt+left", "ctrl+left", "alt+b"),
			key.WithHelp("alt+←", "word back"),
		),
		WordRight: key.NewBinding(
			key.WithKeys("alt+right", "ctrl+right", "alt+f"),
			key.WithHelp("alt+→", "word forward"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
			key.WithHelp("home", "line start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
			key.WithHelp("end", "line end"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		DocStart: key.NewBinding(
			key.WithKeys("ctrl+home"),
			key.WithHelp("ctrl+home", "document start"),
		),
		DocEnd: key.NewBinding(
			key.WithKeys("ctrl+end"),
			key.WithHelp("ctrl+end", "document end"),
		),

		SelectUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+↑", "select up"),
		),
		SelectDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("shift+↓", "select down"),
		),
		SelectLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "select back"),
		),
		SelectRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "select forward"),
		),
		SelectHome: key.NewBinding(
			key.WithKeys("shift+home"),
			key.WithHelp("shift+home", "select to line start"),
		),
		SelectEnd: key.NewBinding(
			key.WithKeys("shift+end"),
			key.WithHelp("shift+end", "select to line end"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("alt+a"),
			key.WithHelp("alt+a", "select all"),
		),

		Newline: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new line"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("⌫", "delete back"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
			key.WithHelp("del", "delete forward"),
		),
		Indent: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "indent"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),

		Bold: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "bold"),
		),
		// ctrl+i arrives as tab in most terminals.
		Italic: key.NewBinding(
			key.WithKeys("alt+i"),
			key.WithHelp("alt+i", "italic"),
		),
		Code: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("alt+c", "inline code"),
		),
		Link: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "link"),
		),
	}
}

// AppKeyMap defines the keybindings handled above the editor.
type AppKeyMap struct {
	TogglePreview key.Binding
	CycleTheme    key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultAppKeyMap returns the default application keybindings.
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		TogglePreview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "editor/preview"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "next theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// Keymap pairs both maps for the help view.
type Keymap struct {
	App    AppKeyMap
	Editor EditorKeyMap
}

// Default returns the default keybindings for the whole program.
func Default() Keymap {
	return Keymap{App: DefaultAppKeyMap(), Editor: DefaultEditorKeyMap()}
}

// ShortHelp returns keybindings for the short help view.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.App.TogglePreview, k.Editor.Bold, k.Editor.Undo, k.App.Help, k.App.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k Keymap) FullHelp() [][]key.Binding {
	e := k.Editor
	return [][]key.Binding{
		{e.WordLeft, e.WordRight, e.Home, e.End, e.PageUp, e.PageDown, e.DocStart, e.DocEnd}, // Movement
		{e.SelectLeft, e.SelectRight, e.SelectUp, e.SelectDown, e.SelectAll},                // Selection
		{e.Indent, e.Undo, e.Redo, e.Backspace, e.Delete},                                   // Editing
		{e.Bold, e.Italic, e.Code, e.Link},                                                  // Formatting
		{k.App.TogglePreview, k.App.CycleTheme, k.App.Help, k.App.Quit},                     // General
	}
}

// Bindings lists every binding once, for conflict checks.
func (k Keymap) Bindings() []key.Binding {
	e := k.Editor
	return []key.Binding{
		e.Up, e.Down, e.Left, e.Right, e.WordLeft, e.WordRight, e.Home, e.End,
		e.PageUp, e.PageDown, e.DocStart, e.DocEnd,
		e.SelectUp, e.SelectDown, e.SelectLeft, e.SelectRight, e.SelectHome, e.SelectEnd, e.SelectAll,
		e.Newline, e.Backspace, e.Delete, e.Indent, e.Undo, e.Redo,
		e.Bold, e.Italic, e.Code, e.Link,
		k.App.TogglePreview, k.App.CycleTheme, k.App.Help, k.App.Quit,
	}
}
