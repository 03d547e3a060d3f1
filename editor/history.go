package editor

import (
	"github.com/npillmayer/artboard/document"
)

// DefaultHistoryLimit is the number of snapshots a History keeps by default.
const DefaultHistoryLimit = 50

// History is a bounded stack of prior project snapshots.
//
// The live project is never part of the history: Push is called with the
// project as it was before an edit, and Undo hands the topmost snapshot back
// to become the live project again, removing it from the stack.
type History struct {
	limit   int
	entries []*document.Project
}

// NewHistory creates an empty history keeping at most limit snapshots.
// A limit < 1 selects DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Push records a snapshot. If the history is full, the oldest snapshot is
// discarded.
func (h *History) Push(p *document.Project) {
	if len(h.entries) == h.limit {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = p
	} else {
		h.entries = append(h.entries, p)
	}
}

// Undo removes and returns the most recent snapshot.
func (h *History) Undo() (*document.Project, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	top := len(h.entries) - 1
	p := h.entries[top]
	h.entries[top] = nil
	h.entries = h.entries[:top]
	return p, true
}

// Redo is not implemented. It always returns false.
//
// TODO keep undone snapshots on a forward stack, cleared by Push.
func (h *History) Redo() (*document.Project, bool) {
	return nil, false
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the snapshot the next Undo will restore,
// or -1 if there is none.
func (h *History) Cursor() int {
	return len(h.entries) - 1
}

// CanUndo is true if there is a snapshot to restore.
func (h *History) CanUndo() bool {
	return len(h.entries) > 0
}

// Limit returns the maximum number of snapshots kept.
func (h *History) Limit() int {
	return h.limit
}

// Clear discards all snapshots.
func (h *History) Clear() {
	h.entries = nil
}
