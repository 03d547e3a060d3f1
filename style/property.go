package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     font-size: 14px
//
// a property value of "14px" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return fmt.Sprintf("%s: %s", kv.Key, kv.Value)
}

// --- Style records ---------------------------------------------------------

// Set is a style record, mapping property names to values. nil is a legal
// (empty) record.
//
// Sets are values: clients must not modify a Set they did not create
// themselves. All methods leave the receiver unchanged.
type Set map[string]Property

// SetOf creates a style record from a list of key-value pairs.
func SetOf(kvs ...KeyValue) Set {
	s := make(Set, len(kvs))
	for _, kv := range kvs {
		s[normKey(kv.Key)] = kv.Value
	}
	return s
}

// Get returns a property value and an indicator wether it has been found.
func (s Set) Get(key string) (Property, bool) {
	p, ok := s[normKey(key)]
	return p, ok
}

// Has is a predicate wether key is set in s.
func (s Set) Has(key string) bool {
	_, ok := s[normKey(key)]
	return ok
}

// Clone returns a copy of s. The copy is never nil.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// With returns a copy of s with key set to value. An empty value removes key.
func (s Set) With(key string, value Property) Set {
	c := s.Clone()
	if value.IsEmpty() {
		delete(c, normKey(key))
	} else {
		c[normKey(key)] = value
	}
	return c
}

// Merge returns a copy of s, overlayed key-by-key with delta. Empty values in
// delta remove the corresponding key.
func (s Set) Merge(delta Set) Set {
	c := s.Clone()
	for k, v := range delta {
		k = normKey(k)
		if v.IsEmpty() {
			delete(c, k)
		} else {
			c[k] = v
		}
	}
	return c
}

// Keys returns the property keys of s in lexical order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties of s, ordered by group and then by key.
func (s Set) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(s))
	for _, k := range s.Keys() {
		r = append(r, KeyValue{k, s[k]})
	}
	sort.SliceStable(r, func(i, j int) bool {
		return GroupOf(r[i].Key) < GroupOf(r[j].Key)
	})
	return r
}

// Equal is a predicate wether two records contain the same properties.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		if w, ok := other[k]; !ok || w != v {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range s.Keys() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k + ": " + s[k].String())
	}
	b.WriteString("}")
	return b.String()
}

func normKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// --- Property groups -------------------------------------------------------

// Group is a category of style properties. We track only a subset of CSS:
// the box model, flex and grid layout, positioning, typography and a few
// visual basics.
type Group uint8

// Property groups, in the order a property panel will usually list them.
const (
	Untracked Group = iota
	GroupBox
	GroupFlex
	GroupGrid
	GroupPosition
	GroupTypography
	GroupVisual
)

var groupNames = [...]string{"X", "Box", "Flex", "Grid", "Position", "Typography", "Visual"}

func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return "X"
}

var groupOfPropertyKey = map[string]Group{
	"display":                    GroupBox, // Box
	"box-sizing":                 GroupBox,
	"overflow":                   GroupBox,
	"width":                      GroupBox,
	"height":                     GroupBox,
	"min-width":                  GroupBox,
	"min-height":                 GroupBox,
	"max-width":                  GroupBox,
	"max-height":                 GroupBox,
	"margin-top":                 GroupBox,
	"margin-right":               GroupBox,
	"margin-bottom":              GroupBox,
	"margin-left":                GroupBox,
	"padding-top":                GroupBox,
	"padding-right":              GroupBox,
	"padding-bottom":             GroupBox,
	"padding-left":               GroupBox,
	"border-width":               GroupBox,
	"border-style":               GroupBox,
	"border-color":               GroupBox,
	"border-top-left-radius":     GroupBox,
	"border-top-right-radius":    GroupBox,
	"border-bottom-right-radius": GroupBox,
	"border-bottom-left-radius":  GroupBox,
	"flex-direction":             GroupFlex, // Flex
	"flex-wrap":                  GroupFlex,
	"justify-content":            GroupFlex,
	"align-items":                GroupFlex,
	"align-content":              GroupFlex,
	"align-self":                 GroupFlex,
	"flex-grow":                  GroupFlex,
	"flex-shrink":                GroupFlex,
	"flex-basis":                 GroupFlex,
	"order":                      GroupFlex,
	"gap":                        GroupFlex,
	"row-gap":                    GroupFlex,
	"column-gap":                 GroupFlex,
	"grid-template-columns":      GroupGrid, // Grid
	"grid-template-rows":         GroupGrid,
	"grid-auto-flow":             GroupGrid,
	"grid-column":                GroupGrid,
	"grid-row":                   GroupGrid,
	"justify-items":              GroupGrid,
	"justify-self":               GroupGrid,
	"position":                   GroupPosition, // Position
	"top":                        GroupPosition,
	"right":                      GroupPosition,
	"bottom":                     GroupPosition,
	"left":                       GroupPosition,
	"z-index":                    GroupPosition,
	"font-family":                GroupTypography, // Typography
	"font-size":                  GroupTypography,
	"font-weight":                GroupTypography,
	"font-style":                 GroupTypography,
	"line-height":                GroupTypography,
	"letter-spacing":             GroupTypography,
	"text-align":                 GroupTypography,
	"text-decoration":            GroupTypography,
	"text-transform":             GroupTypography,
	"white-space":                GroupTypography,
	"color":                      GroupTypography,
	"background-color":           GroupVisual, // Visual
	"background-image":           GroupVisual,
	"opacity":                    GroupVisual,
	"box-shadow":                 GroupVisual,
	"cursor":                     GroupVisual,
	"object-fit":                 GroupVisual,
}

// GroupOf returns the style property group for a style property.
// Example:
//    GroupOf("margin-top") => GroupBox
//
// Unknown style property keys will return Untracked.
func GroupOf(key string) Group {
	return groupOfPropertyKey[normKey(key)]
}

// IsTracked is a predicate wether a property key belongs to the subset of
// CSS properties we handle.
func IsTracked(key string) bool {
	return GroupOf(key) != Untracked
}
