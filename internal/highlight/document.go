package highlight

import "strings"

// Highlighter highlights whole documents.
// The zero value reproduces the default classification rules.
type Highlighter struct {
	Options Options
}

// New creates a highlighter with the given options.
func New(opts Options) Highlighter {
	return Highlighter{Options: opts}
}

// Lines splits document on '\n' and classifies each line in order. Fence
// state starts outside a fence on every call. An N-line document always
// yields N lines.
func (h Highlighter) Lines(document string) []Line {
	raw := strings.Split(document, "\n")
	out := make([]Line, len(raw))
	state := OutsideFence
	for i, line := range raw {
		out[i], state = ClassifyLine(line, state, h.Options)
	}
	return out
}

// Highlight returns the overlay markup for document.
func (h Highlighter) Highlight(document string) string {
	return MarkupLines(h.Lines(document))
}

// Highlight returns the overlay markup for document using default options.
func Highlight(document string) string {
	return Highlighter{}.Highlight(document)
}
