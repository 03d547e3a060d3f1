package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ErrUntrackedProperty is returned if a declaration names a CSS property outside
// of the subset of properties we handle.
var ErrUntrackedProperty = errors.New("untracked CSS property")

// ParseDeclarations parses a list of CSS declarations, e.g.
//
//    display: grid; grid-template-columns: repeat(3, 1fr); padding: 8px 16px
//
// into a style record. Shorthand properties for margins, padding, border radius
// and insets are split into their individual components (see
// SplitCompoundProperty). Declarations for properties we do not track result in
// an error wrapping ErrUntrackedProperty; the record returned alongside holds
// every declaration which could be processed.
func ParseDeclarations(text string) (Set, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Set{}, nil
	}
	if !strings.HasSuffix(text, ";") && !strings.HasSuffix(text, "}") {
		text += ";" // parser drops a final declaration without terminator
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return Set{}, fmt.Errorf("cannot parse style declarations: %w", err)
	}
	s := make(Set, len(decls))
	var untracked []string
	for _, d := range decls {
		key := normKey(d.Property)
		value := Property(strings.TrimSpace(d.Value))
		kvs, err := SplitCompoundProperty(key, value)
		if err != nil { // not a compound
			kvs = []KeyValue{{key, value}}
		}
		for _, kv := range kvs {
			if !IsTracked(kv.Key) {
				untracked = append(untracked, kv.Key)
				continue
			}
			s[kv.Key] = kv.Value
		}
	}
	tracer().Debugf("parsed %d style declarations into %d properties", len(decls), len(s))
	if len(untracked) > 0 {
		return s, fmt.Errorf("%w: %s", ErrUntrackedProperty, strings.Join(untracked, ", "))
	}
	return s, nil
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3px 6px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "6px"
//    "padding-bottom" => "3px"
//    "padding-left"   => "6px"
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return split4("margin", "", fourDirs, fields)
	case "padding":
		return split4("padding", "", fourDirs, fields)
	case "inset":
		return split4("", "", fourDirs, fields)
	case "border-radius":
		return split4("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is
// top, right, bottom, left, with missing values mirrored from the opposite side.
func split4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	values := [4]string{fields[0], fields[0], fields[0], fields[0]}
	switch l {
	case 2:
		values[1], values[3] = fields[1], fields[1]
	case 3:
		values[1], values[2], values[3] = fields[1], fields[2], fields[1]
	case 4:
		copy(values[:], fields)
	}
	r := make([]KeyValue, 4)
	for i := range dirs {
		r[i] = KeyValue{p(pre, suf, dirs[i]), Property(values[i])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	switch {
	case prefix == "" && suffix == "":
		return tag
	case suffix == "":
		return prefix + "-" + tag
	case prefix == "":
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
