package style

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	if len(Chain(Desktop)) != 0 {
		t.Errorf("expected chain for desktop to be empty, is %v", Chain(Desktop))
	}
	assert.Equal(t, []Breakpoint{Laptop, Tablet}, Chain(Tablet))
	assert.Equal(t, []Breakpoint{Laptop, Tablet, Mobile}, Chain(Mobile))
}

func TestResolveDesktopIsBase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.style")
	defer teardown()
	//
	base := SetOf(KeyValue{"font-size", "16px"}, KeyValue{"color", "black"})
	ov := Overrides{}.Merge(Laptop, SetOf(KeyValue{"font-size", "14px"}))
	r := Resolve(base, ov, Desktop)
	if !r.Equal(base) {
		t.Errorf("expected resolve(desktop) to equal base styles, is %v", r)
	}
}

func TestResolveCascadesDownward(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.style")
	defer teardown()
	//
	base := SetOf(KeyValue{"font-size", "16px"}, KeyValue{"color", "black"})
	ov := Overrides{}.Merge(Laptop, SetOf(KeyValue{"font-size", "14px"}))
	for _, bp := range []Breakpoint{Laptop, Tablet, Mobile} {
		r := Resolve(base, ov, bp)
		if fs, _ := r.Get("font-size"); fs != "14px" {
			t.Errorf("expected font-size at %s to be 14px, is %q", bp, fs)
		}
		if c, _ := r.Get("color"); c != "black" {
			t.Errorf("expected color at %s to be black, is %q", bp, c)
		}
	}
	ov = ov.Merge(Mobile, SetOf(KeyValue{"font-size", "12px"}))
	fs, _ := Resolve(base, ov, Tablet).Get("font-size")
	assert.Equal(t, Property("14px"), fs)
	fs, _ = Resolve(base, ov, Mobile).Get("font-size")
	assert.Equal(t, Property("12px"), fs)
	// base record must not have been touched
	fs, _ = base.Get("font-size")
	assert.Equal(t, Property("16px"), fs)
}

func TestOverridePredicates(t *testing.T) {
	base := SetOf(KeyValue{"color", "black"})
	ov := Overrides{}.
		Merge(Laptop, SetOf(KeyValue{"gap", "4px"})).
		Merge(Tablet, SetOf(KeyValue{"color", "red"}))
	assert.True(t, IsOverriddenAt(ov, Tablet, "color"))
	assert.False(t, IsOverriddenAt(ov, Mobile, "color"))
	assert.False(t, IsInherited(base, ov, Tablet, "color"), "overridden at tablet")
	assert.True(t, IsInherited(base, ov, Mobile, "color"))
	assert.True(t, IsInherited(base, ov, Tablet, "gap"), "gap comes from laptop")
	assert.False(t, IsInherited(base, ov, Laptop, "gap"), "gap is set at laptop itself")
	assert.False(t, IsInherited(base, ov, Desktop, "color"))
	assert.False(t, IsInherited(base, ov, Mobile, "width"))
	//
	from, found := ResolvedFrom(base, ov, Mobile, "color")
	require.True(t, found)
	assert.Equal(t, Tablet, from)
	from, found = ResolvedFrom(base, ov, Laptop, "color")
	require.True(t, found)
	assert.Equal(t, Desktop, from)
	_, found = ResolvedFrom(base, ov, Laptop, "width")
	assert.False(t, found)
}

func TestOverridesAreValues(t *testing.T) {
	ov1 := Overrides{}.Merge(Mobile, SetOf(KeyValue{"font-size", "12px"}))
	ov2 := ov1.Without(Mobile)
	if !ov1.Has(Mobile) {
		t.Error("expected original overrides to keep mobile record")
	}
	if !ov2.IsEmpty() {
		t.Errorf("expected overrides without mobile to be empty, are %v", ov2)
	}
	assert.Nil(t, ov1.At(Desktop))
	assert.Panics(t, func() { ov1.With(Desktop, Set{}) })
}

func TestOverridesJSON(t *testing.T) {
	ov := Overrides{}.Merge(Tablet, SetOf(KeyValue{"gap", "4px"}))
	data, err := ov.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"tablet":{"gap":"4px"}}`, string(data))
	var back Overrides
	require.NoError(t, back.UnmarshalJSON(data))
	assert.True(t, back.Equal(ov))
	assert.Error(t, back.UnmarshalJSON([]byte(`{"desktop":{"gap":"4px"}}`)))
}

func TestMergeRemovesEmptyValues(t *testing.T) {
	s := SetOf(KeyValue{"color", "red"}, KeyValue{"gap", "4px"})
	m := s.Merge(Set{"color": NullStyle, "width": "10px"})
	assert.Equal(t, Set{"gap": "4px", "width": "10px"}, m)
	assert.Len(t, s, 2)
}

func TestKeysAreCaseInsensitive(t *testing.T) {
	s := SetOf(KeyValue{"font-size", "16px"})
	m := s.Merge(Set{" Font-Size": "20px", "COLOR": "red"})
	assert.Equal(t, Set{"font-size": "20px", "color": "red"}, m)
	assert.Equal(t, Set{}, m.Merge(Set{"Font-Size": NullStyle, "Color": NullStyle}))
	//
	var ov Overrides
	ov = ov.With(Tablet, Set{"Font-Size": "12px"})
	eff := Resolve(s, ov, Mobile)
	assert.Equal(t, Set{"font-size": "12px"}, eff)
}

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.style")
	defer teardown()
	//
	s, err := ParseDeclarations("display: grid; grid-template-columns: repeat(2, 1fr); padding: 8px 16px")
	require.NoError(t, err)
	assert.Equal(t, Property("grid"), s["display"])
	assert.Equal(t, Property("repeat(2, 1fr)"), s["grid-template-columns"])
	assert.Equal(t, Property("8px"), s["padding-top"])
	assert.Equal(t, Property("16px"), s["padding-right"])
	assert.Equal(t, Property("8px"), s["padding-bottom"])
	assert.Equal(t, Property("16px"), s["padding-left"])
	//
	s, err = ParseDeclarations("color: red; transform: rotate(3deg)")
	if !errors.Is(err, ErrUntrackedProperty) {
		t.Errorf("expected untracked property error, got %v", err)
	}
	assert.Equal(t, Set{"color": "red"}, s)
}

func TestSplitCompoundProperty(t *testing.T) {
	kvs, err := SplitCompoundProperty("border-radius", "4px 8px 12px")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{
		{"border-top-left-radius", "4px"},
		{"border-top-right-radius", "8px"},
		{"border-bottom-right-radius", "12px"},
		{"border-bottom-left-radius", "8px"},
	}, kvs)
	kvs, err = SplitCompoundProperty("inset", "0")
	require.NoError(t, err)
	assert.Equal(t, "top", kvs[0].Key)
	assert.Equal(t, "left", kvs[3].Key)
	_, err = SplitCompoundProperty("color", "red")
	assert.Error(t, err)
}
