package editor

import (
	"slices"

	"github.com/npillmayer/artboard/document"
	"github.com/npillmayer/artboard/droptarget"
	"github.com/npillmayer/artboard/style"
	"github.com/npillmayer/artboard/tracks"
)

type gesture struct {
	start *document.Project // live project at gesture start
}

// BeginGesture starts an interactive gesture. Edits up to the matching
// EndGesture replace the live project without recording history.
func (ed *Editor) BeginGesture() error {
	var err error
	ed.update(func() bool {
		if ed.gesture != nil {
			err = ErrGestureActive
			return false
		}
		ed.gesture = &gesture{start: ed.project}
		return true
	})
	return err
}

// EndGesture finishes the active gesture. If the project differs from the
// one at gesture start, a single history entry is recorded and changed is
// true. Otherwise the original project is reinstalled and nothing is
// recorded.
func (ed *Editor) EndGesture() (changed bool, err error) {
	ed.update(func() bool {
		if ed.gesture == nil {
			err = ErrNoGesture
			return false
		}
		start := ed.gesture.start
		ed.gesture = nil
		if document.Equal(start, ed.project) {
			ed.project = start
			return true
		}
		ed.history.Push(start)
		changed = true
		tracer().Infof("gesture committed")
		return true
	})
	return
}

// CancelGesture aborts the active gesture and restores the project from
// gesture start.
func (ed *Editor) CancelGesture() error {
	var err error
	ed.update(func() bool {
		if ed.gesture == nil {
			err = ErrNoGesture
			return false
		}
		ed.project = ed.gesture.start
		ed.gesture = nil
		ed.pruneSelectionLocked()
		return true
	})
	return err
}

// baseLocked is the project interactive computations start from: the
// project at gesture start, if a gesture is active.
func (ed *Editor) baseLocked() *document.Project {
	if ed.gesture != nil {
		return ed.gesture.start
	}
	return ed.project
}

// ResizeTrack moves the divider between track divider and divider+1 of grid
// element id along axis by delta screen pixels. rendered holds the on-screen
// track sizes and zoom the current zoom factor.
//
// During a gesture, the track list is always recomputed from the list at
// gesture start, with delta being the total pointer movement since then, and
// the result replaces the project with the gesture-start project plus the
// resize. The result is written for the active breakpoint.
//
// Declarations the track codec does not interpret (percentages, minmax(…) and
// the like) are written back verbatim. If the resize leaves the tracks
// unchanged, e.g. because the divider is out of range, the rendered sizes do
// not match the declared tracks or both sides are auto, nothing is written.
func (ed *Editor) ResizeTrack(id string, axis tracks.Axis, divider int, rendered []float64,
	delta, zoom float64) bool {
	//
	return ed.edit(func(p *document.Project, abID string) (*document.Project, bool) {
		base := ed.baseLocked()
		ab, _ := base.Artboard(abID)
		e, ok := ab.Element(id)
		if !ok {
			return p, false
		}
		prop := axis.TemplateProperty()
		list := tracks.ParseLenient(e.EffectiveStyles(ed.bp)[prop].String())
		resized := tracks.Resize(list, rendered, divider, delta, zoom)
		next := base
		if !slices.Equal(list, resized) {
			patch := document.StylePatch(style.Set{prop: style.Property(tracks.Serialize(resized))})
			next, _ = document.UpdateElement(base, abID, id, patch, ed.bp)
		} else {
			tracer().Debugf("resize of %s leaves tracks %q unchanged", id, tracks.Serialize(list))
		}
		return next, next != p
	})
}

// DragSpanHandle moves the start or end handle of grid child id along axis.
// lines are the on-screen positions of the grid lines, pointer the pointer
// coordinate along axis. The handle snaps to a grid line; the span never
// inverts or collapses. Children without an explicit placement are treated
// as spanning the first track.
func (ed *Editor) DragSpanHandle(id string, axis tracks.Axis, handle tracks.Handle, lines []float64,
	pointer float64) bool {
	//
	if len(lines) < 2 {
		return false
	}
	return ed.edit(func(p *document.Project, abID string) (*document.Project, bool) {
		ab, _ := p.Artboard(abID)
		e, ok := ab.Element(id)
		if !ok {
			return p, false
		}
		prop := axis.PlacementProperty()
		span, ok := tracks.ParseSpan(e.EffectiveStyles(ed.bp)[prop].String())
		if !ok {
			span = tracks.Span{Start: 1, End: 2}
		}
		line := tracks.SnapLine(lines, pointer, ed.opts.SnapTolerance)
		span = span.Drag(handle, line, len(lines))
		patch := document.StylePatch(style.Set{prop: style.Property(span.String())})
		return document.UpdateElement(p, abID, id, patch, ed.bp)
	})
}

// DropAt moves element id to a drop target, as computed by droptarget.Resolve.
// Drops which would leave the element in place are ignored.
func (ed *Editor) DropAt(id string, t droptarget.Target) bool {
	return ed.edit(func(p *document.Project, abID string) (*document.Project, bool) {
		ab, ok := p.Artboard(abID)
		if !ok || t.IsNoop(ab, id) {
			return p, false
		}
		return document.MoveElement(p, abID, id, t.ParentID, t.Index)
	})
}
