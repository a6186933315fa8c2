package markdown

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/inkwell/internal/log"
	"github.com/zjrosen/inkwell/internal/ui/styles"
)

// Preview is a scrollable rendered view of the document. It re-renders only
// when the document, size, or style changes.
type Preview struct {
	viewport viewport.Model
	renderer *Renderer
	style    string
	wrap     int // fixed wrap column; 0 follows the width
	source   string
	rendered bool
	err      error
}

// NewPreview creates a preview using style and a fixed wrap column (0 to
// follow the width).
func NewPreview(style string, wrap int) Preview {
	return Preview{
		viewport: viewport.New(0, 0),
		style:    style,
		wrap:     wrap,
	}
}

// SetSize resizes the preview.
func (p Preview) SetSize(width, height int) Preview {
	if p.viewport.Width != width {
		p.rendered = false
	}
	p.viewport.Width = width
	p.viewport.Height = height
	return p
}

// SetContent sets the document to preview.
func (p Preview) SetContent(doc string) Preview {
	if doc != p.source {
		p.source = doc
		p.rendered = false
	}
	return p
}

// Refresh re-renders if anything changed since the last render. Call it
// before View when the preview is visible.
func (p Preview) Refresh() Preview {
	if p.rendered || p.viewport.Width <= 0 {
		return p
	}

	width := p.wrap
	if width <= 0 || width > p.viewport.Width {
		width = p.viewport.Width
	}
	if p.renderer == nil || p.renderer.Width() != width {
		r, err := New(p.style, width)
		if err != nil {
			p.err = err
			log.ErrorErr(log.CatUI, "Preview renderer failed", err, "style", p.style)
			p.viewport.SetContent(styles.ErrorStyle.Render(err.Error()))
			p.rendered = true
			return p
		}
		p.renderer = r
	}

	out, err := p.renderer.Render(p.source)
	if err != nil {
		p.err = err
		log.ErrorErr(log.CatUI, "Preview render failed", err)
		out = styles.ErrorStyle.Render(err.Error())
	} else {
		p.err = nil
	}
	if out == EmptyMessage {
		out = styles.PlaceholderStyle.Render(out)
	}
	p.viewport.SetContent(out)
	p.rendered = true
	return p
}

// Err returns the last render error.
func (p Preview) Err() error {
	return p.err
}

// Update scrolls the preview.
func (p Preview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the visible part of the preview.
func (p Preview) View() string {
	return lipgloss.NewStyle().Width(p.viewport.Width).Height(p.viewport.Height).
		Render(p.viewport.View())
}

// ScrollIndicator is "↑NN%" once scrolled down, empty at the top.
func (p Preview) ScrollIndicator() string {
	if p.viewport.AtTop() {
		return ""
	}
	return fmt.Sprintf("↑%d%%", int(p.viewport.ScrollPercent()*100))
}
