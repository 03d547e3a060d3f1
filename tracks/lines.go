package tracks

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSnapTolerance is the distance in pixels within which the pointer
// snaps to a grid line.
const DefaultSnapTolerance = 6.0

// Axis selects grid columns or grid rows.
type Axis uint8

// Grid axes.
const (
	Columns Axis = iota
	Rows
)

func (a Axis) String() string {
	if a == Rows {
		return "rows"
	}
	return "columns"
}

// TemplateProperty is the CSS property holding the track list for axis a.
func (a Axis) TemplateProperty() string {
	if a == Rows {
		return "grid-template-rows"
	}
	return "grid-template-columns"
}

// PlacementProperty is the CSS property placing a grid child along axis a.
func (a Axis) PlacementProperty() string {
	if a == Rows {
		return "grid-row"
	}
	return "grid-column"
}

// GapProperty is the CSS property for the gap between tracks along axis a.
func (a Axis) GapProperty() string {
	if a == Rows {
		return "row-gap"
	}
	return "column-gap"
}

// Lines computes the positions of the grid lines from rendered track sizes.
// origin is the position of the first line, gap the rendered gap between
// tracks. Line k (0-based) sits at the start of track k; the last line sits at
// the end of the last track. For n tracks, n+1 positions are returned.
func Lines(rendered []float64, gap float64, origin float64) []float64 {
	if len(rendered) == 0 {
		return nil
	}
	lines := make([]float64, 0, len(rendered)+1)
	pos := origin
	for i, size := range rendered {
		if i > 0 {
			pos += gap
		}
		lines = append(lines, pos)
		pos += size
	}
	return append(lines, pos)
}

// SnapLine returns the CSS grid line number (1-based) the pointer snaps to: the
// first line positioned within tolerance of the pointer or past it. If no line
// qualifies, the last line is returned. For an empty line set, 0 is returned.
func SnapLine(lines []float64, pointer float64, tolerance float64) int {
	if len(lines) == 0 {
		return 0
	}
	for i, pos := range lines {
		if pos+tolerance >= pointer {
			return i + 1
		}
	}
	return len(lines)
}

// --- Spans -----------------------------------------------------------------

// Span is the placement of a grid child along one axis, in CSS grid line numbers.
// A valid span has 1 <= Start < End.
type Span struct {
	Start, End int
}

func (s Span) String() string {
	return fmt.Sprintf("%d / %d", s.Start, s.End)
}

// Size is the number of tracks covered by s.
func (s Span) Size() int {
	return s.End - s.Start
}

// Handle denotes which end of a span is dragged.
type Handle uint8

// Span handles.
const (
	StartHandle Handle = iota
	EndHandle
)

// DragStart moves the start line of s to line, keeping it at least one line
// before the end. Spans never invert or collapse.
func (s Span) DragStart(line int) Span {
	s.Start = clamp(line, 1, s.End-1)
	return s
}

// DragEnd moves the end line of s to line, keeping it at least one line after
// the start and not past lineCount.
func (s Span) DragEnd(line int, lineCount int) Span {
	hi := lineCount
	if hi < s.Start+1 {
		hi = s.Start + 1
	}
	s.End = clamp(line, s.Start+1, hi)
	return s
}

// Drag moves the given handle of s to line.
func (s Span) Drag(h Handle, line int, lineCount int) Span {
	if h == StartHandle {
		return s.DragStart(line)
	}
	return s.DragEnd(line, lineCount)
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ParseSpan interprets a grid-column or grid-row value. Supported forms are
//
//    3           // => 3 / 4
//    2 / 4
//    2 / span 3  // => 2 / 5
//
// Other forms (named lines, negative indices, auto placement) are reported as
// not ok.
func ParseSpan(value string) (Span, bool) {
	parts := strings.Split(value, "/")
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || start < 1 {
		return Span{}, false
	}
	switch len(parts) {
	case 1:
		return Span{start, start + 1}, true
	case 2:
		end := strings.TrimSpace(parts[1])
		if n, ok := strings.CutPrefix(end, "span"); ok {
			k, err := strconv.Atoi(strings.TrimSpace(n))
			if err != nil || k < 1 {
				return Span{}, false
			}
			return Span{start, start + k}, true
		}
		e, err := strconv.Atoi(end)
		if err != nil || e <= start {
			return Span{}, false
		}
		return Span{start, e}, true
	}
	return Span{}, false
}
