package tracks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedTrack is returned for track list tokens we cannot interpret.
var ErrMalformedTrack = errors.New("malformed grid track")

// Unit is the unit of a grid track size.
type Unit uint8

// Track units.
const (
	Auto Unit = iota
	Fr
	Px
)

func (u Unit) String() string {
	switch u {
	case Fr:
		return "fr"
	case Px:
		return "px"
	}
	return "auto"
}

// Track is one column or row definition of a grid container.
//
// Declarations we do not interpret, e.g. percentages or minmax(…), are kept
// as opaque tracks: their unit is Auto and Raw holds the declaration text,
// which is written back unchanged by Serialize.
type Track struct {
	Value float64
	Unit  Unit
	Raw   string
}

// AutoTrack is a track of size 'auto'.
var AutoTrack = Track{Unit: Auto}

// FrTrack creates a flexible track.
func FrTrack(v float64) Track {
	return Track{Value: v, Unit: Fr}
}

// PxTrack creates a fixed-size track.
func PxTrack(v float64) Track {
	return Track{Value: v, Unit: Px}
}

// OpaqueTrack creates a track for a declaration we do not interpret.
func OpaqueTrack(raw string) Track {
	return Track{Unit: Auto, Raw: raw}
}

func (t Track) String() string {
	if t.Raw != "" {
		return t.Raw
	}
	if t.Unit == Auto {
		return "auto"
	}
	return strconv.FormatFloat(t.Value, 'f', -1, 64) + t.Unit.String()
}

// IsOpaque is true for tracks holding an uninterpreted declaration.
func (t Track) IsOpaque() bool {
	return t.Raw != ""
}

// IsResizable is false for auto and opaque tracks.
func (t Track) IsResizable() bool {
	return t.Unit != Auto
}

// tokenize splits a track list at top-level whitespace, keeping functional
// notations like minmax(100px, 1fr) together, and expands repeat(N, X) into
// N copies of the tokens of X. repeat() with a non-numeric count (auto-fill,
// auto-fit) is kept as a single token.
func tokenize(list string) []string {
	var tokens []string
	depth, start := 0, -1
	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, expandRepeat(list[start:end])...)
			start = -1
		}
	}
	for i, r := range list {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(list))
	return tokens
}

func expandRepeat(tok string) []string {
	lower := strings.ToLower(tok)
	if !strings.HasPrefix(lower, "repeat(") || !strings.HasSuffix(tok, ")") {
		return []string{tok}
	}
	inner := tok[len("repeat(") : len(tok)-1]
	comma := topLevelComma(inner)
	if comma < 0 {
		return []string{tok}
	}
	n, err := strconv.Atoi(strings.TrimSpace(inner[:comma]))
	if err != nil || n <= 0 {
		return []string{tok}
	}
	unit := tokenize(inner[comma+1:])
	expanded := make([]string, 0, n*len(unit))
	for i := 0; i < n; i++ {
		expanded = append(expanded, unit...)
	}
	return expanded
}

func topLevelComma(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// ExpandRepeat replaces every repeat(N, X) shorthand with N literal copies of X.
func ExpandRepeat(list string) string {
	return strings.Join(tokenize(list), " ")
}

// Parse parses a CSS track list, e.g. "1fr 200px auto" or "repeat(3, 1fr)".
// Tokens other than fr, px and auto sizes result in an error wrapping
// ErrMalformedTrack.
func Parse(list string) ([]Track, error) {
	tokens := tokenize(list)
	tracks := make([]Track, 0, len(tokens))
	for _, tok := range tokens {
		t, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// ParseLenient parses a track list like Parse does, but keeps tokens it
// cannot interpret (e.g. minmax(…) or percentages) as opaque tracks. Track
// indices thus stay aligned with the rendered grid, and Serialize reproduces
// the uninterpreted declarations verbatim.
func ParseLenient(list string) []Track {
	tokens := tokenize(list)
	tracks := make([]Track, 0, len(tokens))
	for _, tok := range tokens {
		t, err := parseToken(tok)
		if err != nil {
			tracer().Debugf("keeping track %q as opaque", tok)
			t = OpaqueTrack(tok)
		}
		tracks = append(tracks, t)
	}
	return tracks
}

func parseToken(tok string) (Track, error) {
	tok = strings.ToLower(tok)
	var unit Unit
	var num string
	switch {
	case tok == "auto":
		return AutoTrack, nil
	case strings.HasSuffix(tok, "fr"):
		unit, num = Fr, strings.TrimSuffix(tok, "fr")
	case strings.HasSuffix(tok, "px"):
		unit, num = Px, strings.TrimSuffix(tok, "px")
	case tok == "0":
		return PxTrack(0), nil
	default:
		return Track{}, fmt.Errorf("%w: %q", ErrMalformedTrack, tok)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v < 0 {
		return Track{}, fmt.Errorf("%w: %q", ErrMalformedTrack, tok)
	}
	return Track{Value: v, Unit: unit}, nil
}

// Serialize is the inverse of Parse. Tracks are rendered as "{value}fr",
// "{value}px" or "auto", separated by single spaces. repeat(…) shorthands are
// not reconstructed.
func Serialize(tracks []Track) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
