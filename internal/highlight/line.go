package highlight

import "strings"

// FenceDelimiter opens and closes a fenced code block.
const FenceDelimiter = "```"

// maxHeadingLevel is the longest run of '#' that still forms a heading.
const maxHeadingLevel = 6

// Options adjusts line classification.
type Options struct {
	// InlineHeadings scans heading content for inline markup.
	// Off by default: heading content is a single heading span.
	InlineHeadings bool
}

// lineRule claims a whole line. Rules run in order and the first match wins.
type lineRule func(c *classifier) (Line, bool)

var lineRules = []lineRule{
	(*classifier).fenceLine,
	(*classifier).fencedLine,
	(*classifier).heading,
	(*classifier).blockquote,
	(*classifier).horizontalRule,
	(*classifier).listItem,
}

type classifier struct {
	line  string
	state FenceState
	opts  Options
}

// ClassifyLine highlights one line given the fence state before it, and
// returns the fence state after it.
func ClassifyLine(line string, state FenceState, opts Options) (Line, FenceState) {
	c := &classifier{line: line, state: state, opts: opts}
	for _, rule := range lineRules {
		if spans, ok := rule(c); ok {
			return spans, c.state
		}
	}
	return Inline(line), c.state
}

// whole tags the entire line, or nothing for an empty line.
func (c *classifier) whole(tag Tag) Line {
	if c.line == "" {
		return nil
	}
	return Line{{Tag: tag, Text: c.line}}
}

// fenceLine is a literal prefix match; indented or trailing text still counts.
func (c *classifier) fenceLine() (Line, bool) {
	if !strings.HasPrefix(c.line, FenceDelimiter) {
		return nil, false
	}
	c.state = c.state.Toggle()
	return c.whole(TagCodeBlock), true
}

func (c *classifier) fencedLine() (Line, bool) {
	if c.state != InsideFence {
		return nil, false
	}
	return c.whole(TagCodeBlock), true
}

func (c *classifier) heading() (Line, bool) {
	level := 0
	for level < len(c.line) && c.line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel || level >= len(c.line) || c.line[level] != ' ' {
		return nil, false
	}

	out := Line{
		{Tag: TagHash, Text: c.line[:level]},
		{Tag: TagNone, Text: " "},
	}
	rest := c.line[level+1:]
	switch {
	case rest == "":
	case c.opts.InlineHeadings:
		out = append(out, Inline(rest)...)
	default:
		out = append(out, Span{Tag: TagHeading, Text: rest})
	}
	return out, true
}

func (c *classifier) blockquote() (Line, bool) {
	if !strings.HasPrefix(c.line, ">") {
		return nil, false
	}
	return c.whole(TagBlockquote), true
}

func (c *classifier) horizontalRule() (Line, bool) {
	trimmed := strings.TrimSpace(c.line)
	if len(trimmed) < 3 {
		return nil, false
	}
	mark := trimmed[0]
	if mark != '-' && mark != '*' && mark != '_' {
		return nil, false
	}
	if strings.Trim(trimmed, string(mark)) != "" {
		return nil, false
	}
	return c.whole(TagHR), true
}

func (c *classifier) listItem() (Line, bool) {
	indent, marker, ok := listPrefix(c.line)
	if !ok {
		return nil, false
	}

	var out Line
	if indent > 0 {
		out = append(out, Span{Tag: TagNone, Text: c.line[:indent]})
	}
	out = append(out,
		Span{Tag: TagListMarker, Text: c.line[indent:marker]},
		Span{Tag: TagNone, Text: " "},
	)
	return append(out, Inline(c.line[marker+1:])...), true
}

// listPrefix finds "<indent><marker> " at the start of line. indent is the
// end of the leading whitespace and marker the end of the marker; the
// separating space sits at line[marker].
func listPrefix(line string) (indent, marker int, ok bool) {
	for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
		indent++
	}
	if indent >= len(line) {
		return 0, 0, false
	}

	marker = indent
	switch line[marker] {
	case '-', '*', '+':
		marker++
	default:
		for marker < len(line) && isDigit(line[marker]) {
			marker++
		}
		if marker == indent || marker >= len(line) || line[marker] != '.' {
			return 0, 0, false
		}
		marker++
	}

	if marker >= len(line) || line[marker] != ' ' {
		return 0, 0, false
	}
	return indent, marker, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
