package document

import (
	"fmt"
	"strings"

	"github.com/npillmayer/artboard/style"
)

// ElementType is the type tag of an element, from a closed set. Container
// types may have children, leaf types may not.
type ElementType uint8

// Element types. Containers come first.
const (
	Container ElementType = iota
	Section
	Grid
	Stack
	Text
	Heading
	Button
	Image
	Link
)

var elementTypeNames = [...]string{
	"container", "section", "grid", "stack",
	"text", "heading", "button", "image", "link",
}

// ElementTypes lists all element types.
var ElementTypes = [...]ElementType{Container, Section, Grid, Stack, Text, Heading, Button, Image, Link}

func (t ElementType) String() string {
	if t.IsValid() {
		return elementTypeNames[t]
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// IsValid is a predicate wether t is a known element type.
func (t ElementType) IsValid() bool {
	return t <= Link
}

// IsContainer is true for element types which may have children.
func (t ElementType) IsContainer() bool {
	return t <= Stack
}

// ParseElementType returns the element type for a name like "heading".
func ParseElementType(s string) (ElementType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range elementTypeNames {
		if name == s {
			return ElementType(i), nil
		}
	}
	return Container, fmt.Errorf("unknown element type %q", s)
}

// MarshalText is part of interface encoding.TextMarshaler.
func (t ElementType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("unknown element type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText is part of interface encoding.TextUnmarshaler.
func (t *ElementType) UnmarshalText(text []byte) error {
	et, err := ParseElementType(string(text))
	if err != nil {
		return err
	}
	*t = et
	return nil
}

// --- Elements --------------------------------------------------------------

// Element is a node in the element tree of an artboard.
//
// Elements are values: once an element is part of a project, it must not be
// modified. Edit operations clone elements before changing them.
type Element struct {
	ID               string          `json:"id" yaml:"id"`
	Name             string          `json:"name" yaml:"name"`
	ClassName        string          `json:"className,omitempty" yaml:"className,omitempty"`
	Type             ElementType     `json:"type" yaml:"type"`
	Position         PositionMode    `json:"position" yaml:"position"`
	Pin              *Pin            `json:"pin,omitempty" yaml:"pin,omitempty"`
	Styles           style.Set       `json:"styles" yaml:"styles"`
	BreakpointStyles style.Overrides `json:"breakpointStyles" yaml:"breakpointStyles"`
	Children         []string        `json:"children" yaml:"children"`
	Content          string          `json:"content,omitempty" yaml:"content,omitempty"`
}

// IsContainer is true if e may have children.
func (e *Element) IsContainer() bool {
	return e.Type.IsContainer()
}

// EffectiveStyles returns the styles of e, resolved for breakpoint bp.
func (e *Element) EffectiveStyles(bp style.Breakpoint) style.Set {
	return style.Resolve(e.Styles, e.BreakpointStyles, bp)
}

// clone returns a shallow copy of e which may be modified. Style records are
// values and therefore shared; the children list and pin are copied.
func (e *Element) clone() *Element {
	c := *e
	c.Children = append([]string{}, e.Children...)
	if e.Pin != nil {
		pin := *e.Pin
		c.Pin = &pin
	}
	return &c
}

// sameAs compares everything but the id and the children of two elements.
func (e *Element) sameAs(other *Element) bool {
	if e.Name != other.Name || e.ClassName != other.ClassName || e.Type != other.Type ||
		e.Position != other.Position || e.Content != other.Content {
		return false
	}
	if (e.Pin == nil) != (other.Pin == nil) || (e.Pin != nil && *e.Pin != *other.Pin) {
		return false
	}
	return e.Styles.Equal(other.Styles) && e.BreakpointStyles.Equal(other.BreakpointStyles)
}

func (e *Element) String() string {
	return fmt.Sprintf("<%s %s %q>", e.Type, e.ID, e.Name)
}

// --- Artboards -------------------------------------------------------------

// Artboard is a page/canvas with its own element tree.
type Artboard struct {
	ID           string              `json:"id" yaml:"id"`
	Name         string              `json:"name" yaml:"name"`
	Width        float64             `json:"width" yaml:"width"`
	Height       float64             `json:"height" yaml:"height"`
	X            float64             `json:"x" yaml:"x"`
	Y            float64             `json:"y" yaml:"y"`
	Elements     map[string]*Element `json:"elements" yaml:"elements"`
	RootChildren []string            `json:"rootChildren" yaml:"rootChildren"`
}

// NewArtboard creates an empty artboard.
func NewArtboard(id, name string, width, height float64) *Artboard {
	return &Artboard{
		ID:           id,
		Name:         name,
		Width:        width,
		Height:       height,
		Elements:     make(map[string]*Element),
		RootChildren: []string{},
	}
}

// Element returns the element for id.
func (ab *Artboard) Element(id string) (*Element, bool) {
	if ab == nil || id == "" {
		return nil, false
	}
	e, ok := ab.Elements[id]
	return e, ok
}

// Len returns the number of elements of ab.
func (ab *Artboard) Len() int {
	return len(ab.Elements)
}

// clone returns a copy of ab with its own element map and root list.
// Elements are shared.
func (ab *Artboard) clone() *Artboard {
	c := *ab
	c.Elements = make(map[string]*Element, len(ab.Elements)+1)
	for id, e := range ab.Elements {
		c.Elements[id] = e
	}
	c.RootChildren = append([]string{}, ab.RootChildren...)
	return &c
}

// --- Projects --------------------------------------------------------------

// Project is the top-level document. It holds artboards in display order.
type Project struct {
	ID            string               `json:"id" yaml:"id"`
	Name          string               `json:"name" yaml:"name"`
	Artboards     map[string]*Artboard `json:"artboards" yaml:"artboards"`
	ArtboardOrder []string             `json:"artboardOrder" yaml:"artboardOrder"`
}

// Artboard returns the artboard for id.
func (p *Project) Artboard(id string) (*Artboard, bool) {
	if p == nil || id == "" {
		return nil, false
	}
	ab, ok := p.Artboards[id]
	return ab, ok
}

// Ordered returns the artboards of p in display order.
func (p *Project) Ordered() []*Artboard {
	abs := make([]*Artboard, 0, len(p.ArtboardOrder))
	for _, id := range p.ArtboardOrder {
		if ab, ok := p.Artboards[id]; ok {
			abs = append(abs, ab)
		}
	}
	return abs
}

// clone returns a copy of p with its own artboard map and order. Artboards
// are shared.
func (p *Project) clone() *Project {
	c := *p
	c.Artboards = make(map[string]*Artboard, len(p.Artboards)+1)
	for id, ab := range p.Artboards {
		c.Artboards[id] = ab
	}
	c.ArtboardOrder = append([]string{}, p.ArtboardOrder...)
	return &c
}

// withArtboard returns a copy of p with ab replacing the artboard of the same id.
func (p *Project) withArtboard(ab *Artboard) *Project {
	c := p.clone()
	if _, ok := c.Artboards[ab.ID]; !ok {
		c.ArtboardOrder = append(c.ArtboardOrder, ab.ID)
	}
	c.Artboards[ab.ID] = ab
	return c
}
