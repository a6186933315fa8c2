package highlight

import (
	"strings"
	"unicode/utf8"
)

// inlineRule claims a span starting at pos, returning the exclusive end.
// Rules never look behind pos and never match an empty span.
type inlineRule struct {
	tag   Tag
	match func(text string, pos int) (end int, ok bool)
}

// inlineRules are tried in order at every position; the first match wins.
var inlineRules = []inlineRule{
	{tag: TagImage, match: matchImage},
	{tag: TagLink, match: matchLink},
	{tag: TagCode, match: matchCode},
	{tag: TagBold, match: matchBold},
	{tag: TagItalic, match: matchItalic},
}

// Inline scans one line for inline markup. Text no rule claims is returned
// as untagged spans, with adjacent literal characters merged.
func Inline(text string) Line {
	s := inlineScanner{text: text}
	s.run()
	return s.out
}

type inlineScanner struct {
	text    string
	pos     int
	litFrom int // start of the pending literal run
	out     Line
}

func (s *inlineScanner) run() {
	for s.pos < len(s.text) {
		if s.tryRules() {
			continue
		}
		// Literal fallback: one whole rune so multi-byte text is never split.
		_, size := utf8.DecodeRuneInString(s.text[s.pos:])
		s.pos += size
	}
	s.flushLiteral()
}

func (s *inlineScanner) tryRules() bool {
	for _, rule := range inlineRules {
		end, ok := rule.match(s.text, s.pos)
		if !ok {
			continue
		}
		s.flushLiteral()
		s.out = append(s.out, Span{Tag: rule.tag, Text: s.text[s.pos:end]})
		s.pos = end
		s.litFrom = end
		return true
	}
	return false
}

func (s *inlineScanner) flushLiteral() {
	if s.litFrom < s.pos {
		s.out = append(s.out, Span{Tag: TagNone, Text: s.text[s.litFrom:s.pos]})
	}
	s.litFrom = s.pos
}

// indexFrom returns the absolute index of the first c at or after from, or -1.
func indexFrom(text string, c byte, from int) int {
	if from >= len(text) {
		return -1
	}
	i := strings.IndexByte(text[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

// matchBracketed matches "[...](...)" where the opening bracket is at open.
func matchBracketed(text string, open int) (int, bool) {
	closeBracket := indexFrom(text, ']', open+1)
	if closeBracket < 0 || closeBracket+1 >= len(text) || text[closeBracket+1] != '(' {
		return 0, false
	}
	closeParen := indexFrom(text, ')', closeBracket+2)
	if closeParen < 0 {
		return 0, false
	}
	return closeParen + 1, true
}

func matchImage(text string, pos int) (int, bool) {
	if text[pos] != '!' || pos+1 >= len(text) || text[pos+1] != '[' {
		return 0, false
	}
	return matchBracketed(text, pos+1)
}

func matchLink(text string, pos int) (int, bool) {
	if text[pos] != '[' {
		return 0, false
	}
	return matchBracketed(text, pos)
}

func matchCode(text string, pos int) (int, bool) {
	if text[pos] != '`' {
		return 0, false
	}
	end := indexFrom(text, '`', pos+1)
	if end < 0 {
		return 0, false
	}
	return end + 1, true
}

func matchBold(text string, pos int) (int, bool) {
	c := text[pos]
	if (c != '*' && c != '_') || pos+1 >= len(text) || text[pos+1] != c {
		return 0, false
	}
	delim := text[pos : pos+2]
	i := strings.Index(text[pos+2:], delim)
	if i < 0 {
		return 0, false
	}
	return pos + 2 + i + 2, true
}

// matchItalic only considers the first closing delimiter. When it sits right
// after the opener the content would be empty, so there is no match at all.
func matchItalic(text string, pos int) (int, bool) {
	c := text[pos]
	if c != '*' && c != '_' {
		return 0, false
	}
	end := indexFrom(text, c, pos+1)
	if end < 0 || end == pos+1 {
		return 0, false
	}
	return end + 1, true
}
