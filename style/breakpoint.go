package style

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Breakpoint is one of a fixed, ordered set of viewport-width tiers.
// Desktop is the unconditioned base.
type Breakpoint uint8

// Breakpoints in cascade order.
const (
	Desktop Breakpoint = iota
	Laptop
	Tablet
	Mobile
)

// Breakpoints lists all breakpoints in cascade order.
var Breakpoints = [...]Breakpoint{Desktop, Laptop, Tablet, Mobile}

const overrideCount = int(Mobile) // number of non-base breakpoints

var breakpointNames = [...]string{"desktop", "laptop", "tablet", "mobile"}

// maxWidth holds the nominal media query widths (in px). Desktop has none.
var maxWidth = [...]int{0, 1280, 1024, 640}

func (bp Breakpoint) String() string {
	if bp.IsValid() {
		return breakpointNames[bp]
	}
	return fmt.Sprintf("breakpoint(%d)", uint8(bp))
}

// IsValid is a predicate wether bp is one of the known breakpoints.
func (bp Breakpoint) IsValid() bool {
	return bp <= Mobile
}

// IsBase is true for Desktop.
func (bp Breakpoint) IsBase() bool {
	return bp == Desktop
}

// MaxWidth returns the viewport width in px up to which a breakpoint applies.
// For Desktop it returns 0, meaning "unconditioned".
func (bp Breakpoint) MaxWidth() int {
	assertThat(bp.IsValid(), "unknown breakpoint %d", uint8(bp))
	return maxWidth[bp]
}

// ParseBreakpoint returns the breakpoint for a name like "tablet".
func ParseBreakpoint(s string) (Breakpoint, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range breakpointNames {
		if name == s {
			return Breakpoint(i), nil
		}
	}
	return Desktop, fmt.Errorf("unknown breakpoint %q", s)
}

// MarshalText is part of interface encoding.TextMarshaler.
func (bp Breakpoint) MarshalText() ([]byte, error) {
	if !bp.IsValid() {
		return nil, fmt.Errorf("unknown breakpoint %d", uint8(bp))
	}
	return []byte(bp.String()), nil
}

// UnmarshalText is part of interface encoding.TextUnmarshaler.
func (bp *Breakpoint) UnmarshalText(text []byte) error {
	b, err := ParseBreakpoint(string(text))
	if err != nil {
		return err
	}
	*bp = b
	return nil
}

// Chain returns the cascade chain for bp: the breakpoints strictly after
// Desktop up to and including bp. For Desktop the chain is empty.
//
//    Chain(Tablet) => [Laptop, Tablet]
//
func Chain(bp Breakpoint) []Breakpoint {
	assertThat(bp.IsValid(), "unknown breakpoint %d", uint8(bp))
	chain := make([]Breakpoint, 0, int(bp))
	for b := Laptop; b <= bp; b++ {
		chain = append(chain, b)
	}
	return chain
}

// --- Overrides -------------------------------------------------------------

// Overrides is a table of sparse style records, one optional record for each
// non-base breakpoint. The zero value holds no overrides.
//
// Like Set, Overrides is a value type. Methods return modified copies.
type Overrides struct {
	sets [overrideCount]Set
}

func slot(bp Breakpoint) int {
	assertThat(bp.IsValid(), "unknown breakpoint %d", uint8(bp))
	assertThat(!bp.IsBase(), "desktop styles are base styles, not overrides")
	return int(bp) - 1
}

// At returns the override record for bp, or nil if there is none.
// Desktop never has an override record.
func (ov Overrides) At(bp Breakpoint) Set {
	if bp.IsBase() {
		return nil
	}
	return ov.sets[slot(bp)]
}

// Has is a predicate wether an override record exists for bp.
func (ov Overrides) Has(bp Breakpoint) bool {
	return ov.At(bp) != nil
}

// With returns a copy of ov, having the override record for bp replaced by s.
// A nil s removes the record.
func (ov Overrides) With(bp Breakpoint, s Set) Overrides {
	ov.sets[slot(bp)] = s
	return ov
}

// Without returns a copy of ov without an override record for bp.
func (ov Overrides) Without(bp Breakpoint) Overrides {
	return ov.With(bp, nil)
}

// Merge returns a copy of ov where delta has been merged into the record
// for bp, creating the record if necessary.
func (ov Overrides) Merge(bp Breakpoint, delta Set) Overrides {
	s := ov.At(bp)
	if s == nil {
		s = Set{}
	}
	return ov.With(bp, s.Merge(delta))
}

// IsEmpty is true if no breakpoint carries an override record.
func (ov Overrides) IsEmpty() bool {
	for _, s := range ov.sets {
		if s != nil {
			return false
		}
	}
	return true
}

// Equal is a predicate wether two override tables hold the same records.
func (ov Overrides) Equal(other Overrides) bool {
	for i := range ov.sets {
		if (ov.sets[i] == nil) != (other.sets[i] == nil) || !ov.sets[i].Equal(other.sets[i]) {
			return false
		}
	}
	return true
}

func (ov Overrides) asMap() map[string]Set {
	m := make(map[string]Set, overrideCount)
	for i, s := range ov.sets {
		if s != nil {
			m[Breakpoint(i+1).String()] = s
		}
	}
	return m
}

func overridesFromMap(m map[string]Set) (Overrides, error) {
	var ov Overrides
	for k, s := range m {
		bp, err := ParseBreakpoint(k)
		if err != nil {
			return ov, err
		}
		if bp.IsBase() {
			return ov, fmt.Errorf("desktop may not carry breakpoint overrides")
		}
		if s == nil {
			s = Set{}
		}
		ov = ov.With(bp, s)
	}
	return ov, nil
}

// MarshalJSON encodes overrides as an object keyed by breakpoint name.
func (ov Overrides) MarshalJSON() ([]byte, error) {
	return json.Marshal(ov.asMap())
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (ov *Overrides) UnmarshalJSON(data []byte) error {
	var m map[string]Set
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	o, err := overridesFromMap(m)
	if err != nil {
		return err
	}
	*ov = o
	return nil
}

// MarshalYAML encodes overrides as a mapping keyed by breakpoint name.
func (ov Overrides) MarshalYAML() (interface{}, error) {
	return ov.asMap(), nil
}

// UnmarshalYAML is the inverse of MarshalYAML.
func (ov *Overrides) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]Set
	if err := value.Decode(&m); err != nil {
		return err
	}
	o, err := overridesFromMap(m)
	if err != nil {
		return err
	}
	*ov = o
	return nil
}

func (ov Overrides) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, s := range ov.sets {
		if s == nil {
			continue
		}
		if b.Len() > 1 {
			b.WriteString(" ")
		}
		b.WriteString(Breakpoint(i+1).String() + "=" + s.String())
	}
	b.WriteString("]")
	return b.String()
}
