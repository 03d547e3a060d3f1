package editor

import (
	"errors"
	"sync"

	"github.com/npillmayer/artboard/document"
	"github.com/npillmayer/artboard/style"
)

// ErrGestureActive is returned by BeginGesture if a gesture is in progress.
var ErrGestureActive = errors.New("a gesture is already in progress")

// ErrNoGesture is returned by EndGesture and CancelGesture without an active
// gesture.
var ErrNoGesture = errors.New("no gesture in progress")

// State is an immutable snapshot of an editing session.
type State struct {
	Project      *document.Project
	Artboard     string           // id of the active artboard, or ""
	Breakpoint   style.Breakpoint // active breakpoint
	Selection    []string         // selected element ids, primary first
	HasClipboard bool
	CanUndo      bool
	InGesture    bool
}

// ActiveArtboard returns the active artboard, if any.
func (s State) ActiveArtboard() (*document.Artboard, bool) {
	return s.Project.Artboard(s.Artboard)
}

// Primary returns the primary selection, i.e. the first selected element.
func (s State) Primary() string {
	if len(s.Selection) == 0 {
		return ""
	}
	return s.Selection[0]
}

// IsSelected is a predicate wether element id is selected.
func (s State) IsSelected(id string) bool {
	for _, sel := range s.Selection {
		if sel == id {
			return true
		}
	}
	return false
}

// Editor is the state container of an editing session. All methods are safe
// for concurrent use, but edits are serialized. Subscribers are called
// synchronously after each state change and must not call back into
// mutating Editor methods.
type Editor struct {
	mu          sync.Mutex
	opts        Options
	project     *document.Project
	artboard    string
	bp          style.Breakpoint
	selection   []string
	clipboard   document.Clipboard
	history     *History
	gesture     *gesture
	subscribers map[int]func(State)
	nextSub     int
}

// New creates an editor for project p. If p is nil, an empty project is
// created. The first artboard of p becomes the active one.
func New(p *document.Project, opts Options) *Editor {
	opts = opts.normalized()
	if p == nil {
		p = document.NewProject("Untitled", opts.IDs)
	}
	ed := &Editor{
		opts:        opts,
		history:     NewHistory(opts.HistoryLimit),
		subscribers: make(map[int]func(State)),
	}
	ed.install(p)
	return ed
}

func (ed *Editor) install(p *document.Project) {
	ed.project = p
	ed.artboard = ""
	if len(p.ArtboardOrder) > 0 {
		ed.artboard = p.ArtboardOrder[0]
	}
	ed.selection = nil
	ed.history.Clear()
	ed.gesture = nil
}

// Snapshot returns the current state.
func (ed *Editor) Snapshot() State {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.stateLocked()
}

// Project returns the live project.
func (ed *Editor) Project() *document.Project {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.project
}

// HistoryLen returns the number of undoable steps.
func (ed *Editor) HistoryLen() int {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.history.Len()
}

// ClearHistory discards all undo steps. The live project is kept.
func (ed *Editor) ClearHistory() {
	ed.update(func() bool {
		if !ed.history.CanUndo() {
			return false
		}
		ed.history.Clear()
		return true
	})
}

func (ed *Editor) stateLocked() State {
	return State{
		Project:      ed.project,
		Artboard:     ed.artboard,
		Breakpoint:   ed.bp,
		Selection:    append([]string(nil), ed.selection...),
		HasClipboard: !ed.clipboard.IsEmpty(),
		CanUndo:      ed.history.CanUndo(),
		InGesture:    ed.gesture != nil,
	}
}

// Subscribe registers a function to be called with the new state after every
// change. It returns a function to cancel the subscription.
func (ed *Editor) Subscribe(fn func(State)) (unsubscribe func()) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	id := ed.nextSub
	ed.nextSub++
	ed.subscribers[id] = fn
	return func() {
		ed.mu.Lock()
		defer ed.mu.Unlock()
		delete(ed.subscribers, id)
	}
}

// update runs fn with the lock held and notifies subscribers afterwards if fn
// reports a change.
func (ed *Editor) update(fn func() bool) bool {
	ed.mu.Lock()
	if !fn() {
		ed.mu.Unlock()
		return false
	}
	state := ed.stateLocked()
	subs := make([]func(State), 0, len(ed.subscribers))
	for _, s := range ed.subscribers {
		subs = append(subs, s)
	}
	ed.mu.Unlock()
	for _, s := range subs {
		s(state)
	}
	return true
}

// commitLocked installs next as the live project. Outside of gestures, the
// previous project is pushed onto the history.
func (ed *Editor) commitLocked(next *document.Project) {
	if ed.gesture == nil {
		ed.history.Push(ed.project)
	}
	ed.project = next
}

// edit applies a document operation on the active artboard.
func (ed *Editor) edit(op func(p *document.Project, ab string) (*document.Project, bool)) bool {
	return ed.update(func() bool {
		next, changed := op(ed.project, ed.artboard)
		if !changed {
			return false
		}
		ed.commitLocked(next)
		ed.pruneSelectionLocked()
		return true
	})
}

// pruneSelectionLocked drops selected ids which no longer exist.
func (ed *Editor) pruneSelectionLocked() {
	ab, _ := ed.project.Artboard(ed.artboard)
	sel := ed.selection[:0]
	for _, id := range ed.selection {
		if _, ok := ab.Element(id); ok {
			sel = append(sel, id)
		}
	}
	ed.selection = sel
}

// Load replaces the live project, discarding history and selection.
func (ed *Editor) Load(p *document.Project) {
	ed.update(func() bool {
		ed.install(p)
		return true
	})
}

// --- Session state ---------------------------------------------------------

// SetActiveArtboard switches to another artboard, clearing the selection.
func (ed *Editor) SetActiveArtboard(id string) bool {
	return ed.update(func() bool {
		if _, ok := ed.project.Artboard(id); !ok || id == ed.artboard {
			return false
		}
		ed.artboard = id
		ed.selection = nil
		return true
	})
}

// SetBreakpoint sets the breakpoint style edits are written to.
func (ed *Editor) SetBreakpoint(bp style.Breakpoint) bool {
	if !bp.IsValid() {
		return false
	}
	return ed.update(func() bool {
		if bp == ed.bp {
			return false
		}
		ed.bp = bp
		return true
	})
}

// Select replaces the selection. Unknown ids are ignored.
func (ed *Editor) Select(ids ...string) bool {
	return ed.update(func() bool {
		ab, _ := ed.project.Artboard(ed.artboard)
		sel := make([]string, 0, len(ids))
		for _, id := range ids {
			if _, ok := ab.Element(id); ok && indexOf(sel, id) < 0 {
				sel = append(sel, id)
			}
		}
		if sameIDs(sel, ed.selection) {
			return false
		}
		ed.selection = sel
		return true
	})
}

// ToggleSelect adds id to or removes it from the selection.
func (ed *Editor) ToggleSelect(id string) bool {
	return ed.update(func() bool {
		if i := indexOf(ed.selection, id); i >= 0 {
			ed.selection = append(ed.selection[:i:i], ed.selection[i+1:]...)
			return true
		}
		ab, _ := ed.project.Artboard(ed.artboard)
		if _, ok := ab.Element(id); !ok {
			return false
		}
		ed.selection = append(ed.selection, id)
		return true
	})
}

// ClearSelection empties the selection.
func (ed *Editor) ClearSelection() bool {
	return ed.update(func() bool {
		if len(ed.selection) == 0 {
			return false
		}
		ed.selection = nil
		return true
	})
}

// --- History ---------------------------------------------------------------

// Undo restores the most recent snapshot and clears the selection.
// Undo is not available during a gesture.
func (ed *Editor) Undo() bool {
	return ed.update(func() bool {
		if ed.gesture != nil {
			return false
		}
		p, ok := ed.history.Undo()
		if !ok {
			return false
		}
		ed.project = p
		if _, ok := p.Artboard(ed.artboard); !ok {
			ed.artboard = ""
			if len(p.ArtboardOrder) > 0 {
				ed.artboard = p.ArtboardOrder[0]
			}
		}
		ed.selection = nil
		tracer().Infof("undo, %d snapshot(s) left", ed.history.Len())
		return true
	})
}

// Redo is not implemented. It leaves the state unchanged and returns false.
func (ed *Editor) Redo() bool {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	_, ok := ed.history.Redo()
	return ok
}

// --- helpers ---------------------------------------------------------------

func indexOf(ids []string, id string) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
