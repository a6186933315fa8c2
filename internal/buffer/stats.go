package buffer

import (
	"strings"
	"unicode/utf8"
)

// Stats are the document counters shown in the status line.
type Stats struct {
	Lines int
	Words int
	Chars int
}

// Count computes Stats for text. Lines counts '\n'-separated lines, so an
// empty document has one. Words are whitespace-separated fields and Chars
// counts runes.
func Count(text string) Stats {
	return Stats{
		Lines: strings.Count(text, "\n") + 1,
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
	}
}
