package document

import (
	"github.com/npillmayer/artboard/idgen"
)

// ArtboardSpacing is the horizontal distance between artboards placed by
// AddArtboard in the overview canvas.
const ArtboardSpacing = 100.0

// NewProject creates an empty project. If gen is nil, idgen.Default is used.
func NewProject(name string, gen idgen.Generator) *Project {
	if gen == nil {
		gen = idgen.Default
	}
	return &Project{
		ID:            gen(),
		Name:          name,
		Artboards:     make(map[string]*Artboard),
		ArtboardOrder: []string{},
	}
}

// WithArtboard returns a copy of p containing ab. If p already holds an
// artboard with the same id, it is replaced; otherwise ab is appended to
// the display order.
func WithArtboard(p *Project, ab *Artboard) *Project {
	assertThat(ab != nil && ab.ID != "", "artboard without id")
	return p.withArtboard(ab)
}

// AddArtboard creates a new artboard of the given design size and appends it
// to p. The artboard is placed right of the rightmost artboard of the overview.
func AddArtboard(p *Project, name string, width, height float64, gen idgen.Generator) (*Project, string) {
	if gen == nil {
		gen = idgen.Default
	}
	ab := NewArtboard(gen(), name, width, height)
	for _, other := range p.Artboards {
		if x := other.X + other.Width + ArtboardSpacing; x > ab.X {
			ab.X = x
		}
	}
	tracer().Infof("add artboard %s %q at x=%.0f", ab.ID, name, ab.X)
	return p.withArtboard(ab), ab.ID
}

// RemoveArtboard returns a copy of p without the artboard for id.
func RemoveArtboard(p *Project, id string) (*Project, bool) {
	if _, ok := p.Artboard(id); !ok {
		return p, false
	}
	c := p.clone()
	delete(c.Artboards, id)
	c.ArtboardOrder = removeID(c.ArtboardOrder, id)
	return c, true
}

// ArtboardPatch holds optional changes to an artboard's properties.
// Nil fields are left untouched.
type ArtboardPatch struct {
	Name          *string
	Width, Height *float64
	X, Y          *float64
}

// UpdateArtboard applies patch to the artboard for id.
func UpdateArtboard(p *Project, id string, patch ArtboardPatch) (*Project, bool) {
	ab, ok := p.Artboard(id)
	if !ok {
		return p, false
	}
	c := *ab
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	setIfNonNegative(&c.Width, patch.Width)
	setIfNonNegative(&c.Height, patch.Height)
	if patch.X != nil {
		c.X = *patch.X
	}
	if patch.Y != nil {
		c.Y = *patch.Y
	}
	if c.Name == ab.Name && c.Width == ab.Width && c.Height == ab.Height && c.X == ab.X && c.Y == ab.Y {
		return p, false
	}
	return p.withArtboard(&c), true
}

func setIfNonNegative(dst *float64, v *float64) {
	if v != nil && *v >= 0 {
		*dst = *v
	}
}

// ReorderArtboard moves the artboard for id to position index of the display
// order. index is interpreted relative to the order without the artboard and
// clamped.
func ReorderArtboard(p *Project, id string, index int) (*Project, bool) {
	from := indexOf(p.ArtboardOrder, id)
	if from < 0 {
		return p, false
	}
	rest := removeID(p.ArtboardOrder, id)
	index = clampIndex(index, len(rest))
	if index == from {
		return p, false
	}
	c := p.clone()
	c.ArtboardOrder = insertAt(rest, index, id)
	return c, true
}

// --- id list helpers -------------------------------------------------------

func indexOf(ids []string, id string) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}

// removeID returns a new list without any occurrence of id.
func removeID(ids []string, id string) []string {
	r := make([]string, 0, len(ids))
	for _, x := range ids {
		if x != id {
			r = append(r, x)
		}
	}
	return r
}

// removeIDs returns a new list without any id contained in drop.
func removeIDs(ids []string, drop map[string]bool) []string {
	r := make([]string, 0, len(ids))
	for _, x := range ids {
		if !drop[x] {
			r = append(r, x)
		}
	}
	return r
}

// insertAt returns a new list with id inserted at position i.
func insertAt(ids []string, i int, id ...string) []string {
	r := make([]string, 0, len(ids)+len(id))
	r = append(r, ids[:i]...)
	r = append(r, id...)
	return append(r, ids[i:]...)
}

// clampIndex maps an insertion index into [0…n]. Negative indices mean
// "append".
func clampIndex(i, n int) int {
	if i < 0 || i > n {
		return n
	}
	return i
}
