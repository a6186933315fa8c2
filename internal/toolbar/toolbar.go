// Package toolbar implements the formatting actions offered above the editor.
//
// An action either prefixes the line holding the caret (block actions such as
// headings and list items) or wraps the selection in a prefix and suffix
// (inline actions such as bold and links). Apply is pure: it takes the
// document and selection and returns the new document and caret, leaving the
// history and the buffer to the caller.
package toolbar

import "github.com/zjrosen/inkwell/internal/buffer"

// Placeholder is wrapped by inline actions when nothing is selected.
const Placeholder = "text"

// IndentText is inserted by the Tab key.
const IndentText = "  "

// Action is one toolbar button.
type Action struct {
	ID     string
	Label  string
	Prefix string
	Suffix string
	Block  bool
}

// Groups are the toolbar buttons, separated into visual groups.
var Groups = [][]Action{
	{
		{ID: "h1", Label: "Heading 1", Prefix: "# ", Block: true},
		{ID: "h2", Label: "Heading 2", Prefix: "## ", Block: true},
		{ID: "h3", Label: "Heading 3", Prefix: "### ", Block: true},
	},
	{
		{ID: "bold", Label: "Bold", Prefix: "**", Suffix: "**"},
		{ID: "italic", Label: "Italic", Prefix: "*", Suffix: "*"},
		{ID: "code", Label: "Inline Code", Prefix: "`", Suffix: "`"},
	},
	{
		{ID: "bullet", Label: "Bullet List", Prefix: "- ", Block: true},
		{ID: "numbered", Label: "Numbered List", Prefix: "1. ", Block: true},
		{ID: "quote", Label: "Blockquote", Prefix: "> ", Block: true},
		{ID: "hr", Label: "Horizontal Rule", Prefix: "\n---\n", Block: true},
	},
	{
		{ID: "link", Label: "Link", Prefix: "[", Suffix: "](url)"},
		{ID: "image", Label: "Image", Prefix: "![", Suffix: "](url)"},
	},
}

// All returns every action in toolbar order.
func All() []Action {
	var out []Action
	for _, g := range Groups {
		out = append(out, g...)
	}
	return out
}

// Lookup finds an action by ID.
func Lookup(id string) (Action, bool) {
	for _, a := range All() {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Result is the document and caret after an action.
type Result struct {
	Text   string
	Cursor int
}

// Apply runs action against text with the given selection. Offsets are in
// runes and out-of-range selections are clamped.
//
// Block actions insert the prefix at the start of the line holding the
// selection start and shift the caret by the prefix length. Inline actions
// replace the selection with prefix+selection+suffix, using Placeholder for
// an empty selection. The caret lands after the wrapped text when something
// was selected, or right after the prefix so the placeholder can be typed
// over.
func Apply(text string, sel buffer.Selection, action Action) Result {
	b := buffer.New(text)
	sel = sel.Clamp(b).Normalize()
	prefixLen := len([]rune(action.Prefix))

	if action.Block {
		b.Insert(b.LineStart(sel.Start), action.Prefix)
		return Result{Text: b.Text(), Cursor: sel.Start + prefixLen}
	}

	selected := sel.Text(b)
	if selected == "" {
		selected = Placeholder
	}
	end := b.Replace(sel.Start, sel.End, action.Prefix+selected+action.Suffix)
	if sel.Empty() {
		return Result{Text: b.Text(), Cursor: sel.Start + prefixLen}
	}
	return Result{Text: b.Text(), Cursor: end}
}

// Indent replaces the selection with IndentText and puts the caret after it.
func Indent(text string, sel buffer.Selection) Result {
	b := buffer.New(text)
	sel = sel.Clamp(b).Normalize()
	end := b.Replace(sel.Start, sel.End, IndentText)
	return Result{Text: b.Text(), Cursor: end}
}
