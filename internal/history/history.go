// Package history keeps undo/redo snapshots of the document.
//
// Every content change records the document as it was before the change.
// Undo swaps the current document for the newest past snapshot and pushes
// the current one onto the future; Redo does the reverse. Recording a new
// change discards the future, since the edit starts a new branch.
package history

// DefaultLimit is the number of past snapshots kept.
const DefaultLimit = 50

// History is a bounded undo stack of whole-document snapshots.
type History struct {
	past   []string // oldest first
	future []string // next redo first
	limit  int
}

// New creates a history keeping at most limit past snapshots.
// A non-positive limit uses DefaultLimit.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Record pushes prev, the document before a change, and clears the future.
func (h *History) Record(prev string) {
	h.past = append(h.past, prev)
	if over := len(h.past) - h.limit; over > 0 {
		h.past = append(h.past[:0:0], h.past[over:]...)
	}
	h.future = nil
}

// Undo returns the previous document given the current one.
// ok is false when there is nothing to undo.
func (h *History) Undo(current string) (prev string, ok bool) {
	if len(h.past) == 0 {
		return current, false
	}
	prev = h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]string{current}, h.future...)
	return prev, true
}

// Redo returns the next document given the current one.
// ok is false when there is nothing to redo.
func (h *History) Redo(current string) (next string, ok bool) {
	if len(h.future) == 0 {
		return current, false
	}
	next = h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, current)
	return next, true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// Len returns the number of past and future snapshots.
func (h *History) Len() (past, future int) {
	return len(h.past), len(h.future)
}

// Clear drops all snapshots, for example after the file is reloaded from disk.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}
