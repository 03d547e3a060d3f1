package document

import (
	"fmt"
	"strings"

	"github.com/npillmayer/artboard/style"
)

// PositionMode is an enum type for the CSS position property of an element.
type PositionMode uint8

// Enum values for type PositionMode
const (
	Static   PositionMode = iota // CSS static (default)
	Relative                     // CSS relative
	Absolute                     // CSS absolute
	Fixed                        // CSS fixed
	Sticky                       // CSS sticky
)

var positionMap = map[PositionMode]string{
	Static:   "static",
	Relative: "relative",
	Absolute: "absolute",
	Fixed:    "fixed",
	Sticky:   "sticky",
}

var positionStringMap = map[string]PositionMode{
	"static":   Static,
	"relative": Relative,
	"absolute": Absolute,
	"fixed":    Fixed,
	"sticky":   Sticky,
}

func (m PositionMode) String() string {
	if s, ok := positionMap[m]; ok {
		return s
	}
	return fmt.Sprintf("position(%d)", uint8(m))
}

// ParsePosition returns the position mode for a property value. It will never
// return an error, even with illegal input, but instead will then return Static
// and ok=false.
func ParsePosition(p style.Property) (mode PositionMode, ok bool) {
	mode, ok = positionStringMap[strings.ToLower(strings.TrimSpace(string(p)))]
	return
}

// MarshalText is part of interface encoding.TextMarshaler.
func (m PositionMode) MarshalText() ([]byte, error) {
	if s, ok := positionMap[m]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("unknown position mode %d", uint8(m))
}

// UnmarshalText is part of interface encoding.TextUnmarshaler.
func (m *PositionMode) UnmarshalText(text []byte) error {
	mode, ok := ParsePosition(style.Property(text))
	if !ok {
		return fmt.Errorf("unknown position mode %q", string(text))
	}
	*m = mode
	return nil
}

// --- Expression matching ---------------------------------------------------

// PositionPatterns holds a value for each position mode, to be selected by
// PositionPattern(…).OneOf(…).
type PositionPatterns[T any] struct {
	Static   T
	Relative T
	Absolute T
	Fixed    T
	Sticky   T
}

// PositionPattern starts a match expression on a position mode:
//
//    offsets := PositionPattern[bool](el.Position).OneOf(PositionPatterns[bool]{
//        Absolute: true,
//        Fixed:    true,
//    })
//
func PositionPattern[T any](m PositionMode) *PMatchExpr[T] {
	return &PMatchExpr[T]{mode: m}
}

// PMatchExpr is part of pattern matching for position modes and intended to be
// instantiated using `PositionPattern()` only.
type PMatchExpr[T any] struct {
	mode PositionMode
}

// OneOf selects the pattern value for the position mode under test.
func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.mode {
	case Relative:
		return patterns.Relative
	case Absolute:
		return patterns.Absolute
	case Fixed:
		return patterns.Fixed
	case Sticky:
		return patterns.Sticky
	}
	return patterns.Static
}

// --- Pins ------------------------------------------------------------------

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

// Directions of pin offsets, in CSS shorthand order.
const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

var posDirNames = [...]string{"top", "right", "bottom", "left"}

func (d PosDir) String() string {
	if d <= Left {
		return posDirNames[d]
	}
	return "?"
}

// Pin is an anchor offset record for elements with a position mode other than
// Static. Unset offsets are empty properties.
type Pin struct {
	Top    style.Property `json:"top,omitempty" yaml:"top,omitempty"`
	Right  style.Property `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom style.Property `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   style.Property `json:"left,omitempty" yaml:"left,omitempty"`
}

// Offset returns the offset for one direction.
func (pin Pin) Offset(d PosDir) style.Property {
	switch d {
	case Top:
		return pin.Top
	case Right:
		return pin.Right
	case Bottom:
		return pin.Bottom
	case Left:
		return pin.Left
	}
	return style.NullStyle
}

// WithOffset returns a copy of pin with the offset for d replaced.
func (pin Pin) WithOffset(d PosDir, p style.Property) Pin {
	switch d {
	case Top:
		pin.Top = p
	case Right:
		pin.Right = p
	case Bottom:
		pin.Bottom = p
	case Left:
		pin.Left = p
	}
	return pin
}

// IsEmpty is true if no offset is set.
func (pin Pin) IsEmpty() bool {
	return pin == Pin{}
}

// Styles returns the offsets of pin as a style record, omitting unset offsets.
func (pin Pin) Styles() style.Set {
	s := style.Set{}
	for d := Top; d <= Left; d++ {
		if o := pin.Offset(d); !o.IsEmpty() {
			s[d.String()] = o
		}
	}
	return s
}
