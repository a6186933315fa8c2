// Package highlight classifies markdown text into styled spans for the editor overlay.
//
// Highlighting is a pure function of the document text. Each line is either
// claimed whole by a block rule (fence, heading, blockquote, rule, list marker)
// or scanned left to right for inline runs (image, link, code, bold, italic).
// Concatenating the text of every span reproduces the line exactly, so the
// render layer lines up cell for cell with the input layer above it.
package highlight

// Tag is the markdown category of a span.
type Tag int

const (
	TagNone       Tag = iota // Untagged literal text
	TagHash                  // Heading marker run (#, ##, ...)
	TagHeading               // Heading content
	TagBlockquote            // Whole blockquote line
	TagHR                    // Horizontal rule line
	TagListMarker            // Bullet or ordered list marker
	TagCodeBlock             // Fence line or line inside a fence
	TagCode                  // Inline code span
	TagBold                  // **bold** or __bold__
	TagItalic                // *italic* or _italic_
	TagLink                  // [text](url)
	TagImage                 // ![alt](url)
)

// String returns the tag name used in markup class names.
func (t Tag) String() string {
	switch t {
	case TagHash:
		return "hash"
	case TagHeading:
		return "heading"
	case TagBlockquote:
		return "blockquote"
	case TagHR:
		return "hr"
	case TagListMarker:
		return "list-marker"
	case TagCodeBlock:
		return "code-block"
	case TagCode:
		return "code"
	case TagBold:
		return "bold"
	case TagItalic:
		return "italic"
	case TagLink:
		return "link"
	case TagImage:
		return "image"
	default:
		return ""
	}
}

// Class returns the CSS class wrapping spans of this tag, e.g. "md-bold".
// Untagged text has no class.
func (t Tag) Class() string {
	if t == TagNone {
		return ""
	}
	return "md-" + t.String()
}

// AllTags returns every styled tag in declaration order.
func AllTags() []Tag {
	return []Tag{
		TagHash,
		TagHeading,
		TagBlockquote,
		TagHR,
		TagListMarker,
		TagCodeBlock,
		TagCode,
		TagBold,
		TagItalic,
		TagLink,
		TagImage,
	}
}

// ParseTag returns the tag with the given name.
func ParseTag(name string) (Tag, bool) {
	for _, t := range AllTags() {
		if t.String() == name {
			return t, true
		}
	}
	return TagNone, false
}

// Span is a run of source text and its category.
// Text is raw (unescaped); escaping happens when spans are written as markup.
type Span struct {
	Tag  Tag
	Text string
}

// Line is the span sequence for one source line.
type Line []Span

// Text returns the source text the spans cover.
func (l Line) Text() string {
	n := 0
	for _, s := range l {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range l {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}

// Tags returns the tag of each span in order.
func (l Line) Tags() []Tag {
	tags := make([]Tag, len(l))
	for i, s := range l {
		tags[i] = s.Tag
	}
	return tags
}

// FenceState records whether a line sits inside a fenced code block.
type FenceState bool

const (
	OutsideFence FenceState = false
	InsideFence  FenceState = true
)

// Toggle flips the state on a fence delimiter line.
func (f FenceState) Toggle() FenceState {
	return !f
}
