// Package markdown renders the preview tab with glamour.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// EmptyMessage replaces the preview of a blank document.
const EmptyMessage = "Nothing to preview yet"

// noMarginStyle drops glamour's document margins; it is layered over the
// base style.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps a glamour TermRenderer with inkwell's options.
type Renderer struct {
	renderer *glamour.TermRenderer
	style    string
	width    int
}

// New creates a renderer. style is "auto", a glamour standard style name
// ("dark", "light", "notty", "ascii", "dracula", "tokyo-night", "pink"), or
// a path to a JSON style file. width is the word-wrap column.
func New(style string, width int) (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		styleOption(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{renderer: r, style: style, width: width}, nil
}

func styleOption(style string) glamour.TermRendererOption {
	switch style {
	case "", "auto":
		return glamour.WithAutoStyle()
	case "dark", "light", "notty", "ascii", "dracula", "tokyo-night", "pink":
		return glamour.WithStandardStyle(style)
	default:
		return glamour.WithStylePath(style)
	}
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Style returns the configured style.
func (r *Renderer) Style() string {
	return r.style
}

// Render transforms markdown to styled terminal output. A document that is
// only whitespace renders as EmptyMessage.
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return EmptyMessage, nil
	}
	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
