package editor

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// mapOffset moves a rune offset in before to the same place in after: text
// inserted or deleted ahead of it shifts it, and an offset inside deleted
// text lands where the deletion was.
func mapOffset(before, after string, offset int) int {
	if before == after {
		return offset
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	var pos1, pos2, last1, last2 int
	deleted := false
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		if d.Type != diffmatchpatch.DiffInsert {
			pos1 += n
		}
		if d.Type != diffmatchpatch.DiffDelete {
			pos2 += n
		}
		if pos1 > offset {
			deleted = d.Type == diffmatchpatch.DiffDelete
			break
		}
		last1, last2 = pos1, pos2
	}
	if deleted {
		return last2
	}
	return last2 + offset - last1
}
