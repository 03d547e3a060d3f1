package tracks

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpandsRepeat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.tracks")
	defer teardown()
	//
	tracks, err := Parse("200px repeat(3, 1fr) auto")
	require.NoError(t, err)
	assert.Equal(t, []Track{PxTrack(200), FrTrack(1), FrTrack(1), FrTrack(1), AutoTrack}, tracks)
	//
	tracks, err = Parse("repeat(2, 1fr 50px)")
	require.NoError(t, err)
	assert.Equal(t, "1fr 50px 1fr 50px", Serialize(tracks))
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("1fr minmax(100px, 1fr)")
	if !errors.Is(err, ErrMalformedTrack) {
		t.Errorf("expected malformed track error, got %v", err)
	}
	tracks := ParseLenient("1fr 20% 2fr")
	assert.Equal(t, []Track{FrTrack(1), OpaqueTrack("20%"), FrTrack(2)}, tracks)
	assert.Equal(t, "1fr 20% 2fr", Serialize(tracks))
}

func TestParseKeepsFunctionalNotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.tracks")
	defer teardown()
	//
	tracks := ParseLenient("repeat(2, minmax(100px, 1fr)) 50px")
	require.Len(t, tracks, 3)
	assert.True(t, tracks[0].IsOpaque())
	assert.False(t, tracks[0].IsResizable())
	assert.Equal(t, PxTrack(50), tracks[2])
	assert.Equal(t, "minmax(100px, 1fr) minmax(100px, 1fr) 50px", Serialize(tracks))
	//
	tracks = ParseLenient("repeat(auto-fill, 120px)")
	assert.Equal(t, []Track{OpaqueTrack("repeat(auto-fill, 120px)")}, tracks)
	assert.Equal(t, "1fr 1fr 1fr", ExpandRepeat("REPEAT(3, 1fr)"))
}

func TestResizeLeavesOpaqueTracks(t *testing.T) {
	tracks := ParseLenient("1fr 20% 2fr")
	r := Resize(tracks, []float64{100, 50, 200}, 0, 10, 1)
	assert.Equal(t, "1.1fr 20% 2fr", Serialize(r))
	r = Resize(tracks, []float64{100, 50, 200}, 1, 10, 1)
	assert.Equal(t, "1fr 20% 1.9fr", Serialize(r))
}

func TestRoundTrip(t *testing.T) {
	for _, list := range []string{
		"1fr 1fr",
		"1.5fr 0.5fr",
		"120px auto 2fr",
		"repeat(4, 0.25fr)",
		"auto",
		"",
	} {
		tracks, err := Parse(list)
		require.NoError(t, err, list)
		again, err := Parse(Serialize(tracks))
		require.NoError(t, err, list)
		if len(tracks) == 0 {
			assert.Empty(t, again)
			continue
		}
		assert.Equal(t, tracks, again, "round trip of %q", list)
	}
}

func TestResizeFrProportional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.tracks")
	defer teardown()
	//
	tracks, _ := Parse("1fr 1fr")
	r := Resize(tracks, []float64{100, 100}, 0, 50, 1)
	if s := Serialize(r); s != "1.5fr 0.5fr" {
		t.Errorf("expected 1.5fr 0.5fr, got %s", s)
	}
	if Serialize(tracks) != "1fr 1fr" {
		t.Error("expected input tracks to be unchanged")
	}
}

func TestResizeHonorsZoom(t *testing.T) {
	tracks, _ := Parse("100px 100px")
	r := Resize(tracks, []float64{100, 100}, 0, 50, 2) // 50 screen px at 200% = 25px
	assert.Equal(t, "125px 75px", Serialize(r))
}

func TestResizeClampsAtZero(t *testing.T) {
	tracks, _ := Parse("100px 1fr")
	r := Resize(tracks, []float64{100, 100}, 0, 500, 1)
	assert.Equal(t, PxTrack(600), r[0])
	assert.Equal(t, FrTrack(MinFr), r[1])
	r = Resize(tracks, []float64{100, 100}, 0, -500, 1)
	assert.Equal(t, PxTrack(0), r[0])
}

func TestResizeAutoIsFixed(t *testing.T) {
	tracks, _ := Parse("auto 200px")
	r := Resize(tracks, []float64{120, 200}, 0, 30, 1)
	assert.Equal(t, AutoTrack, r[0])
	assert.Equal(t, PxTrack(170), r[1])
	tracks = ParseLenient("auto 30%")
	assert.Equal(t, tracks, Resize(tracks, []float64{120, 200}, 0, 30, 1))
}

func TestResizeOutOfRange(t *testing.T) {
	tracks, _ := Parse("1fr 1fr")
	assert.Equal(t, tracks, Resize(tracks, []float64{100, 100}, 1, 10, 1))
	assert.Equal(t, tracks, Resize(tracks, []float64{100}, 0, 10, 1))
}

func TestLinesAndSnap(t *testing.T) {
	lines := Lines([]float64{100, 100, 100}, 10, 0)
	assert.Equal(t, []float64{0, 110, 220, 320}, lines)
	assert.Equal(t, 1, SnapLine(lines, 3, DefaultSnapTolerance))
	assert.Equal(t, 2, SnapLine(lines, 50, DefaultSnapTolerance))
	assert.Equal(t, 2, SnapLine(lines, 115, DefaultSnapTolerance), "within tolerance")
	assert.Equal(t, 3, SnapLine(lines, 117, DefaultSnapTolerance))
	assert.Equal(t, 4, SnapLine(lines, 999, DefaultSnapTolerance), "last line as fallback")
	assert.Equal(t, 0, SnapLine(nil, 5, DefaultSnapTolerance))
}

func TestSpanHandlesNeverInvert(t *testing.T) {
	s := Span{2, 4}
	assert.Equal(t, Span{3, 4}, s.DragStart(7))
	assert.Equal(t, Span{1, 4}, s.DragStart(0))
	assert.Equal(t, Span{2, 3}, s.DragEnd(1, 5))
	assert.Equal(t, Span{2, 5}, s.DragEnd(9, 5))
	assert.Equal(t, Span{2, 3}, s.Drag(EndHandle, 2, 5))
	assert.Equal(t, "2 / 4", s.String())
}

func TestParseSpan(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Span
		ok   bool
	}{
		{"3", Span{3, 4}, true},
		{"2 / 4", Span{2, 4}, true},
		{"2 / span 3", Span{2, 5}, true},
		{"4 / 2", Span{}, false},
		{"auto", Span{}, false},
		{"a / b / c", Span{}, false},
	} {
		s, ok := ParseSpan(c.in)
		if ok != c.ok || s != c.want {
			t.Errorf("ParseSpan(%q) = %v, %v; want %v, %v", c.in, s, ok, c.want, c.ok)
		}
	}
}
