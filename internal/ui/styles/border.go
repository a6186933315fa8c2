package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// Panel frames content in a rounded border with title set into the top edge:
//
//	╭─ notes.md ───────╮
//	│content           │
//	╰──────────────────╯
//
// width and height include the border. Content lines are padded or cut to
// the inner width and the content is padded or cut to the inner height.
func Panel(content, title string, width, height int, focused bool) string {
	borderColor := lipgloss.TerminalColor(BorderDefaultColor)
	if focused {
		borderColor = BorderFocusColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(TextSecondaryColor).Bold(focused)

	inner := max(width-2, 1)
	rows := max(height-2, 1)

	lines := strings.Split(content, "\n")
	var b strings.Builder
	b.WriteString(panelTop(title, inner, border, titleStyle))
	for i := 0; i < rows; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w > inner {
			line = truncate.String(line, uint(inner))
		} else if w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		b.WriteString("\n")
		b.WriteString(border.Render(borderVertical) + line + border.Render(borderVertical))
	}
	b.WriteString("\n")
	b.WriteString(border.Render(borderBottomLeft + strings.Repeat(borderHorizontal, inner) + borderBottomRight))
	return b.String()
}

func panelTop(title string, inner int, border, titleStyle lipgloss.Style) string {
	// "─ " + title + " " needs at least four cells to be worth drawing.
	if title == "" || inner < 4 {
		return border.Render(borderTopLeft + strings.Repeat(borderHorizontal, inner) + borderTopRight)
	}
	title = truncate.StringWithTail(title, uint(inner-4), "…")
	dashes := max(inner-3-lipgloss.Width(title), 0)
	return border.Render(borderTopLeft+borderHorizontal+" ") +
		titleStyle.Render(title) +
		border.Render(" "+strings.Repeat(borderHorizontal, dashes)+borderTopRight)
}
