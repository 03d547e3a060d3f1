package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/artboard/idgen"
	"github.com/npillmayer/artboard/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture creates a project with one artboard holding
//
//    A (container)
//    ├── B (text)
//    └── C (button)
//
func fixture(t *testing.T) (p *Project, abID string, a, b, c string) {
	gen := idgen.Sequence("e")
	p = NewProject("test", idgen.Sequence("p"))
	p, abID = AddArtboard(p, "Home", 1440, 900, idgen.Sequence("ab"))
	var ok bool
	p, a, ok = AddElement(p, abID, Container, "", gen)
	require.True(t, ok)
	p, b, ok = AddElement(p, abID, Text, a, gen)
	require.True(t, ok)
	p, c, ok = AddElement(p, abID, Button, a, gen)
	require.True(t, ok)
	return
}

func board(t *testing.T, p *Project, abID string) *Artboard {
	ab, ok := p.Artboard(abID)
	require.True(t, ok, "artboard %s missing", abID)
	require.NoError(t, Validate(ab))
	return ab
}

func TestAddElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.document")
	defer teardown()
	//
	p, abID, a, b, c := fixture(t)
	ab := board(t, p, abID)
	assert.Equal(t, []string{a}, ab.RootChildren)
	assert.Equal(t, []string{b, c}, ab.Elements[a].Children)
	assert.Equal(t, Property("flex"), ab.Elements[a].Styles["display"])
	assert.Equal(t, Property("row"), ab.Elements[a].Styles["flex-direction"])
	assert.Equal(t, "button", ab.Elements[c].ClassName)
	//
	// a leaf cannot be a parent
	p, d, ok := AddElement(p, abID, Image, b, idgen.Sequence("x"))
	require.True(t, ok)
	ab = board(t, p, abID)
	assert.Equal(t, []string{a, d}, ab.RootChildren)
	//
	if _, _, ok := AddElement(p, "no-such-board", Text, "", nil); ok {
		t.Errorf("expected add to a missing artboard to fail soft")
	}
}

// Property is a shortcut for test literals.
type Property = style.Property

func TestMoveToRootScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.document")
	defer teardown()
	//
	p, abID, a, b, c := fixture(t)
	p2, changed := MoveElement(p, abID, b, "", 0)
	require.True(t, changed)
	ab := board(t, p2, abID)
	assert.Equal(t, []string{b, a}, ab.RootChildren)
	assert.Equal(t, []string{c}, ab.Elements[a].Children)
	// the old project is a snapshot and must not be affected
	old := board(t, p, abID)
	assert.Equal(t, []string{a}, old.RootChildren)
	assert.Equal(t, []string{b, c}, old.Elements[a].Children)
}

func TestMoveWithinSameParent(t *testing.T) {
	p, abID, a, b, c := fixture(t)
	p2, changed := MoveElement(p, abID, b, a, 1)
	require.True(t, changed)
	assert.Equal(t, []string{c, b}, board(t, p2, abID).Elements[a].Children)
	// index is relative to the siblings without the moved element
	p3, changed := MoveElement(p2, abID, b, a, 0)
	require.True(t, changed)
	assert.Equal(t, []string{b, c}, board(t, p3, abID).Elements[a].Children)
}

func TestMoveToSameSlotIsNoop(t *testing.T) {
	p, abID, a, b, c := fixture(t)
	for _, move := range []struct {
		id, parent string
		index      int
	}{
		{b, a, 0}, {c, a, 1}, {c, a, -1}, {a, "", 0}, {a, "", 7},
	} {
		p2, changed := MoveElement(p, abID, move.id, move.parent, move.index)
		if changed || p2 != p {
			t.Errorf("expected move of %s to %q[%d] to be a no-op", move.id, move.parent, move.index)
		}
	}
}

func TestMoveRefusesCycles(t *testing.T) {
	p, abID, a, b, _ := fixture(t)
	p, inner, _ := AddElement(p, abID, Stack, a, idgen.Sequence("s"))
	for _, target := range []string{a, inner, b, "missing"} {
		if _, changed := MoveElement(p, abID, a, target, 0); changed {
			t.Errorf("expected move of %s into %s to be refused", a, target)
		}
	}
	p2, changed := MoveElement(p, abID, b, inner, 0)
	require.True(t, changed)
	ab := board(t, p2, abID)
	assert.True(t, IsAncestor(ab, a, b))
	assert.Equal(t, []string{b}, ab.Elements[inner].Children)
}

func TestUpdateAtBreakpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.document")
	defer teardown()
	//
	p, abID, _, b, _ := fixture(t)
	before := board(t, p, abID).Elements[b].Styles["font-size"]
	patch := StylePatch(style.Set{"font-size": "12px"})
	p2, changed := UpdateElement(p, abID, b, patch, style.Mobile)
	require.True(t, changed)
	e := board(t, p2, abID).Elements[b]
	assert.Equal(t, before, e.Styles["font-size"], "base style must be untouched")
	assert.Equal(t, Property("12px"), e.BreakpointStyles.At(style.Mobile)["font-size"])
	assert.Nil(t, e.BreakpointStyles.At(style.Tablet))
	assert.Equal(t, Property("12px"), e.EffectiveStyles(style.Mobile)["font-size"])
	assert.Equal(t, before, e.EffectiveStyles(style.Tablet)["font-size"])
	//
	p3, changed := UpdateElement(p2, abID, b, patch, style.Desktop)
	require.True(t, changed)
	assert.Equal(t, Property("12px"), board(t, p3, abID).Elements[b].Styles["font-size"])
	//
	if _, changed := UpdateElement(p3, abID, b, patch, style.Desktop); changed {
		t.Errorf("expected repeated identical update to be a no-op")
	}
}

func TestUpdateNormalizesStyleKeys(t *testing.T) {
	p, abID, _, b, _ := fixture(t)
	patch := StylePatch(style.Set{"Font-Size": "20px"})
	p2, changed := UpdateElement(p, abID, b, patch, style.Desktop)
	require.True(t, changed)
	e := board(t, p2, abID).Elements[b]
	assert.Equal(t, Property("20px"), e.Styles["font-size"])
	assert.NotContains(t, e.Styles, "Font-Size")
	//
	p3, changed := UpdateElement(p2, abID, b, StylePatch(style.Set{"FONT-SIZE": "10px"}), style.Tablet)
	require.True(t, changed)
	e = board(t, p3, abID).Elements[b]
	assert.Equal(t, Property("10px"), e.EffectiveStyles(style.Mobile)["font-size"])
	assert.Len(t, e.EffectiveStyles(style.Mobile), len(e.Styles))
}

func TestRenameRegeneratesSlug(t *testing.T) {
	p, abID, a, _, _ := fixture(t)
	p, _ = UpdateElement(p, abID, a, Patch{}.Rename("Hero Section!"), style.Tablet)
	e := board(t, p, abID).Elements[a]
	assert.Equal(t, "Hero Section!", e.Name)
	assert.Equal(t, "hero-section", e.ClassName)
	assert.True(t, e.BreakpointStyles.IsEmpty(), "non-style fields go to the element itself")
	p, _ = UpdateElement(p, abID, a, Patch{}.Rename("Header").WithClass("site-head"), style.Desktop)
	assert.Equal(t, "site-head", board(t, p, abID).Elements[a].ClassName)
}

func TestClearBreakpointStyle(t *testing.T) {
	p, abID, a, _, _ := fixture(t)
	p, _ = UpdateElement(p, abID, a, StylePatch(style.Set{"gap": "2px"}), style.Laptop)
	p2, changed := ClearBreakpointStyle(p, abID, a, style.Laptop)
	require.True(t, changed)
	assert.False(t, board(t, p2, abID).Elements[a].BreakpointStyles.Has(style.Laptop))
	if _, changed := ClearBreakpointStyle(p2, abID, a, style.Laptop); changed {
		t.Errorf("expected clearing a missing record to be a no-op")
	}
}

func TestDeleteRemovesDescendants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.document")
	defer teardown()
	//
	p, abID, a, b, c := fixture(t)
	p, other, _ := AddElement(p, abID, Section, "", idgen.Sequence("s"))
	p2, changed := DeleteElements(p, abID, a)
	require.True(t, changed)
	ab := board(t, p2, abID)
	for _, id := range []string{a, b, c} {
		if _, ok := ab.Element(id); ok {
			t.Errorf("expected %s to be deleted", id)
		}
	}
	assert.Equal(t, []string{other}, ab.RootChildren)
	assert.Equal(t, 1, ab.Len())
	//
	p3, changed := DeleteElements(p, abID, b, "missing")
	require.True(t, changed)
	assert.Equal(t, []string{c}, board(t, p3, abID).Elements[a].Children)
	if _, changed := DeleteElements(p, abID, "missing"); changed {
		t.Errorf("expected delete of a missing element to be a no-op")
	}
}

type shape struct {
	Name     string
	Type     ElementType
	Styles   style.Set
	Children []shape
}

func shapeOf(ab *Artboard, id string) shape {
	e := ab.Elements[id]
	s := shape{Name: e.Name, Type: e.Type, Styles: e.Styles}
	for _, ch := range e.Children {
		s.Children = append(s.Children, shapeOf(ab, ch))
	}
	return s
}

func TestDuplicateIsIsomorphic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.document")
	defer teardown()
	//
	p, abID, a, _, _ := fixture(t)
	p2, dup, ok := Duplicate(p, abID, a, idgen.Sequence("d"))
	require.True(t, ok)
	ab := board(t, p2, abID)
	assert.Equal(t, []string{a, dup}, ab.RootChildren)
	orig, copied := shapeOf(ab, a), shapeOf(ab, dup)
	assert.Equal(t, orig.Name+CopySuffix, copied.Name)
	copied.Name = orig.Name
	if diff := cmp.Diff(orig, copied); diff != "" {
		t.Errorf("duplicate differs from source (-want +got):\n%s", diff)
	}
	source := Descendants(ab, a)
	for _, id := range Descendants(ab, dup) {
		assert.NotContains(t, source, id)
	}
}

func TestPastePlacement(t *testing.T) {
	p, abID, a, b, c := fixture(t)
	clip, ok := Copy(p, abID, b)
	require.True(t, ok)
	// edits after copying do not affect the clipboard
	p, _ = UpdateElement(p, abID, b, Patch{}.WithContent("changed"), style.Desktop)
	gen := idgen.Sequence("v")
	//
	p1, into, ok := Paste(p, abID, clip, a, gen)
	require.True(t, ok)
	ab := board(t, p1, abID)
	assert.Equal(t, []string{b, c, into}, ab.Elements[a].Children)
	assert.Equal(t, defaultContent[Text], ab.Elements[into].Content)
	//
	p2, after, _ := Paste(p, abID, clip, b, gen)
	assert.Equal(t, []string{b, after, c}, board(t, p2, abID).Elements[a].Children)
	//
	p3, root, _ := Paste(p, abID, clip, "", gen)
	assert.Equal(t, []string{a, root}, board(t, p3, abID).RootChildren)
}

func TestWrapInContainer(t *testing.T) {
	p, abID, a, b, c := fixture(t)
	p2, box, ok := WrapInContainer(p, abID, []string{c, b}, idgen.Sequence("w"))
	require.True(t, ok)
	ab := board(t, p2, abID)
	assert.Equal(t, []string{box}, ab.Elements[a].Children)
	assert.Equal(t, []string{b, c}, ab.Elements[box].Children)
	if _, _, ok := WrapInContainer(p, abID, []string{a, b}, nil); ok {
		t.Errorf("expected wrapping of non-siblings to fail")
	}
}

func TestTreeUtilities(t *testing.T) {
	p, abID, a, b, c := fixture(t)
	ab := board(t, p, abID)
	parent, ok := ParentOf(ab, c)
	assert.True(t, ok)
	assert.Equal(t, a, parent)
	_, index, _ := IndexOf(ab, c)
	assert.Equal(t, 1, index)
	assert.Equal(t, []string{a, b, c}, Descendants(ab, a))
	assert.True(t, Contains(ab, a, a))
	assert.False(t, IsAncestor(ab, a, a))
	assert.False(t, IsAncestor(ab, b, c))
	anc, ok := AncestorWith(ab, b, IsContainerElement)
	assert.True(t, ok)
	assert.Equal(t, a, anc.ID)
	var visited []string
	_ = Walk(ab, func(e *Element, depth int) error {
		visited = append(visited, e.ID)
		return nil
	})
	assert.Equal(t, []string{a, b, c}, visited)
}

func TestValidateDetectsCorruption(t *testing.T) {
	p, abID, a, b, _ := fixture(t)
	ab := board(t, p, abID).clone()
	ab.RootChildren = append(ab.RootChildren, b) // multi-parenting
	if err := Validate(ab); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("expected invalid tree, got %v", err)
	}
	ab = board(t, p, abID).clone()
	ab.RootChildren = nil // orphans
	assert.ErrorIs(t, Validate(ab), ErrInvalidTree)
	ab = board(t, p, abID).clone()
	ab.Elements[a] = ab.Elements[a].clone()
	ab.Elements[a].Children = append(ab.Elements[a].Children, "ghost")
	assert.ErrorIs(t, Validate(ab), ErrInvalidTree)
}

func TestArtboardOperations(t *testing.T) {
	p := NewProject("site", idgen.Sequence("p"))
	gen := idgen.Sequence("ab")
	p, home := AddArtboard(p, "Home", 1440, 900, gen)
	p, about := AddArtboard(p, "About", 390, 844, gen)
	assert.Equal(t, []string{home, about}, p.ArtboardOrder)
	ab, _ := p.Artboard(about)
	assert.Equal(t, 1440+ArtboardSpacing, ab.X)
	//
	p, ok := ReorderArtboard(p, about, 0)
	require.True(t, ok)
	assert.Equal(t, []string{about, home}, p.ArtboardOrder)
	w := 1024.0
	p, ok = UpdateArtboard(p, home, ArtboardPatch{Width: &w})
	require.True(t, ok)
	ab, _ = p.Artboard(home)
	assert.Equal(t, 1024.0, ab.Width)
	p, ok = RemoveArtboard(p, about)
	require.True(t, ok)
	assert.Equal(t, []string{home}, p.ArtboardOrder)
	require.NoError(t, ValidateProject(p))
}

func TestCodecRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.document")
	defer teardown()
	//
	p, abID, _, b, _ := fixture(t)
	p, _ = UpdateElement(p, abID, b, StylePatch(style.Set{"font-size": "12px"}), style.Tablet)
	p, _ = UpdateElement(p, abID, b, Patch{}.WithPosition(Absolute).WithPin(Pin{Top: "10px"}), style.Desktop)
	data, err := MarshalProject(p)
	require.NoError(t, err)
	t.Logf("%s", data)
	q, err := UnmarshalProject(data)
	require.NoError(t, err)
	if diff := cmp.Diff(p, q, cmp.Comparer(func(x, y style.Overrides) bool {
		return x.Equal(y)
	})); diff != "" {
		t.Errorf("decoded project differs (-want +got):\n%s", diff)
	}
	//
	_, err = UnmarshalProject([]byte(`{"id":"p","artboards":{"a":{"id":"a","elements":{},
		"rootChildren":["x"]}},"artboardOrder":["a"]}`))
	assert.ErrorIs(t, err, ErrInvalidTree)
}

func TestSlugify(t *testing.T) {
	for in, want := range map[string]string{
		"Hero Section":       "hero-section",
		"  __Call to  action": "call-to-action",
		"Über uns":           "ber-uns",
		"!!!":                SlugFallback,
		"nav-bar_2":          "nav-bar-2",
	} {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
