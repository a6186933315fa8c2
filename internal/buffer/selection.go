package buffer

// Selection is a half-open rune range [Start, End). Start may exceed End
// while the user extends a selection backwards; Normalize orders it.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// Normalize returns the selection with Start <= End.
func (s Selection) Normalize() Selection {
	if s.Start > s.End {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	n := s.Normalize()
	return n.End - n.Start
}

// Contains reports whether offset falls inside the selection.
func (s Selection) Contains(offset int) bool {
	n := s.Normalize()
	return offset >= n.Start && offset < n.End
}

// Text returns the selected text of b.
func (s Selection) Text(b *Buffer) string {
	n := s.Normalize()
	return b.Slice(n.Start, n.End)
}

// Clamp limits both ends to b.
func (s Selection) Clamp(b *Buffer) Selection {
	return Selection{Start: b.Clamp(s.Start), End: b.Clamp(s.End)}
}
