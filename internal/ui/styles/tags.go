package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/inkwell/internal/highlight"
)

// tagStyles maps each highlight tag to its style. Untagged text uses
// TextStyle.
var tagStyles map[highlight.Tag]lipgloss.Style

// TagToken returns the color token that themes tag.
func TagToken(tag highlight.Tag) (ColorToken, bool) {
	if tag == highlight.TagNone {
		return "", false
	}
	return ColorToken("md." + tag.String()), true
}

// ForTag returns the style the render layer draws tag with.
func ForTag(tag highlight.Tag) lipgloss.Style {
	if s, ok := tagStyles[tag]; ok {
		return s
	}
	return TextStyle
}

func buildTagStyles() {
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	tagStyles = map[highlight.Tag]lipgloss.Style{
		highlight.TagHash:       fg(MDHashColor).Bold(true),
		highlight.TagHeading:    fg(MDHeadingColor).Bold(true),
		highlight.TagBlockquote: fg(MDBlockquoteColor).Italic(true),
		highlight.TagHR:         fg(MDHRColor),
		highlight.TagListMarker: fg(MDListMarkerColor).Bold(true),
		highlight.TagCodeBlock:  fg(MDCodeBlockColor),
		highlight.TagCode:       fg(MDCodeColor),
		highlight.TagBold:       fg(MDBoldColor).Bold(true),
		highlight.TagItalic:     fg(MDItalicColor).Italic(true),
		highlight.TagLink:       fg(MDLinkColor).Underline(true),
		highlight.TagImage:      fg(MDImageColor).Underline(true),
	}
}
