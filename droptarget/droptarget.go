package droptarget

import (
	"fmt"
	"math"

	"github.com/npillmayer/artboard/document"
)

// Point is a pointer position in screen coordinates.
type Point struct {
	X, Y float64
}

// Rect is an on-screen bounding box.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the center point of r.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains is a predicate wether pt lies within r.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X && pt.X <= r.X+r.Width && pt.Y >= r.Y && pt.Y <= r.Y+r.Height
}

func (r Rect) upperHalf(pt Point) bool {
	return pt.Y < r.Y+r.Height/2
}

// Band limits (relative to a container's height) between which a drop goes
// into the container rather than next to it.
const (
	BandTop    = 0.08
	BandBottom = 0.92
)

func (r Rect) inMiddleBand(pt Point) bool {
	return pt.Y >= r.Y+BandTop*r.Height && pt.Y <= r.Y+BandBottom*r.Height
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Geometry is the rendered layout of an artboard, as supplied by the
// rendering collaborator. It must reflect the most recently rendered frame.
type Geometry interface {
	// HitTest returns the ids of all elements under pt, front to back.
	HitTest(pt Point) []string
	// Bounds returns the on-screen bounding box of an element.
	Bounds(id string) (Rect, bool)
}

// Placement tells where a dropped element goes relative to a reference.
type Placement uint8

// Placements of a drop target.
const (
	AppendRoot Placement = iota // after all root-level elements
	Before                      // before the reference element
	After                       // after the reference element
	Into                        // as first child of a container
)

func (pl Placement) String() string {
	switch pl {
	case Before:
		return "before"
	case After:
		return "after"
	case Into:
		return "into"
	}
	return "append-root"
}

// Target is the resolved landing place of a dragged element.
// ParentID is empty for the root list. Index is relative to the siblings
// without the dragged element. RefID is the element the placement refers to,
// if any.
type Target struct {
	ParentID  string
	Index     int
	Placement Placement
	RefID     string
}

func (t Target) String() string {
	return fmt.Sprintf("%s %q in %q[%d]", t.Placement, t.RefID, t.ParentID, t.Index)
}

// IsNoop is true if moving dragged to t would leave it where it is.
func (t Target) IsNoop(ab *document.Artboard, dragged string) bool {
	parent, index, ok := document.IndexOf(ab, dragged)
	return ok && parent == t.ParentID && index == t.Index
}

// Resolve computes where element dragged would land if dropped at pointer.
//
// Elements under the pointer are visited front to back, skipping the dragged
// element and its descendants. The first remaining hit decides:
//
// ▪︎ A container hit in its vertical middle band receives the element. The
// element goes before or after the container's child nearest to the pointer,
// depending on the half of the child the pointer is in. A container without
// other children, or none with known bounds, receives the element at index 0.
//
// ▪︎ Otherwise the element goes before or after the hit element, within the
// hit element's parent.
//
// If nothing is hit, the element is appended to the root list.
func Resolve(ab *document.Artboard, geo Geometry, pointer Point, dragged string) Target {
	for _, id := range geo.HitTest(pointer) {
		if document.Contains(ab, dragged, id) {
			continue
		}
		e, ok := ab.Element(id)
		if !ok {
			continue
		}
		box, ok := geo.Bounds(id)
		if !ok {
			continue
		}
		var t Target
		if e.IsContainer() && box.inMiddleBand(pointer) {
			t = into(ab, geo, e, pointer, dragged)
		} else if t, ok = beside(ab, id, box, pointer, dragged); !ok {
			continue
		}
		tracer().Debugf("drop target for %s: %v", dragged, t)
		return t
	}
	return Target{
		Index:     len(without(ab.RootChildren, dragged)),
		Placement: AppendRoot,
	}
}

// into resolves a drop into container c, next to the child nearest to the
// pointer.
func into(ab *document.Artboard, geo Geometry, c *document.Element, pointer Point, dragged string) Target {
	children := without(c.Children, dragged)
	nearest, best := -1, math.Inf(1)
	var nearestBox Rect
	for i, ch := range children {
		box, ok := geo.Bounds(ch)
		if !ok {
			continue
		}
		if d := distance(pointer, box.Center()); d < best {
			nearest, best, nearestBox = i, d, box
		}
	}
	if nearest < 0 { // no child has been laid out
		return Target{ParentID: c.ID, Index: 0, Placement: Into}
	}
	if nearestBox.upperHalf(pointer) {
		return Target{ParentID: c.ID, Index: nearest, Placement: Before, RefID: children[nearest]}
	}
	return Target{ParentID: c.ID, Index: nearest + 1, Placement: After, RefID: children[nearest]}
}

// beside resolves a drop before or after element id among its siblings.
func beside(ab *document.Artboard, id string, box Rect, pointer Point, dragged string) (Target, bool) {
	parent, ok := document.ParentOf(ab, id)
	if !ok {
		return Target{}, false
	}
	siblings := without(document.Siblings(ab, parent), dragged)
	index := -1
	for i, sib := range siblings {
		if sib == id {
			index = i
			break
		}
	}
	if box.upperHalf(pointer) {
		return Target{ParentID: parent, Index: index, Placement: Before, RefID: id}, true
	}
	return Target{ParentID: parent, Index: index + 1, Placement: After, RefID: id}, true
}

func without(ids []string, id string) []string {
	r := make([]string, 0, len(ids))
	for _, x := range ids {
		if x != id {
			r = append(r, x)
		}
	}
	return r
}
