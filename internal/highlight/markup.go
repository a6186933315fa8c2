package highlight

import "strings"

const closeSpan = "</span>"

// Markup writes spans as overlay markup. Tagged spans are wrapped in
// <span class="md-TAG">; untagged text is written bare. Text is escaped.
func Markup(spans Line) string {
	var b strings.Builder
	writeMarkup(&b, spans)
	return b.String()
}

// MarkupLines writes each line's markup joined by '\n'.
func MarkupLines(lines []Line) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeMarkup(&b, line)
	}
	return b.String()
}

func writeMarkup(b *strings.Builder, spans Line) {
	for _, s := range spans {
		if s.Tag == TagNone {
			b.WriteString(Escape(s.Text))
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(s.Tag.Class())
		b.WriteString(`">`)
		b.WriteString(Escape(s.Text))
		b.WriteString(closeSpan)
	}
}

// StripTags removes span tags from markup, leaving escaped text.
// Escaped text never contains '<', so every '<' starts a tag.
func StripTags(markup string) string {
	var b strings.Builder
	b.Grow(len(markup))
	for {
		open := strings.IndexByte(markup, '<')
		if open < 0 {
			b.WriteString(markup)
			return b.String()
		}
		b.WriteString(markup[:open])
		end := strings.IndexByte(markup[open:], '>')
		if end < 0 {
			return b.String()
		}
		markup = markup[open+end+1:]
	}
}

// Plain recovers the source text from markup.
func Plain(markup string) string {
	return Unescape(StripTags(markup))
}
