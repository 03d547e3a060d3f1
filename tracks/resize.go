package tracks

import "math"

// MinFr is the smallest flexible size a drag-resize will produce.
const MinFr = 0.1

// FrDecimals is the number of decimals resized fr values are rounded to.
const FrDecimals = 2

// Resize moves the divider between tracks[divider] and tracks[divider+1] by
// delta screen pixels and returns the resulting track list.
//
// rendered holds the on-screen size of each track in pixels as read from layout,
// before zooming is undone. The delta is converted to unzoomed pixels by
// dividing by zoom. The track before the divider grows by delta, the track
// after it shrinks by the same amount; neither drops below zero.
//
// Tracks declared in px receive the new pixel size, rounded to an integer.
// Tracks declared in fr are rescaled: the original fr value is multiplied by
// the ratio of new to original pixel size, rounded to FrDecimals decimals,
// but not below MinFr. Auto and opaque tracks keep their declaration.
//
// Rounding keeps serialized track lists readable. It may shift a flexible
// track by up to half a hundredth of an fr, so callers tracking a pointer
// should always resize from the track list at drag start with the total
// pointer movement, instead of accumulating small deltas.
//
// Resize never modifies its input. If the divider index is out of range or the
// rendered sizes do not match the tracks, an unmodified copy is returned.
func Resize(tracks []Track, rendered []float64, divider int, delta float64, zoom float64) []Track {
	r := make([]Track, len(tracks))
	copy(r, tracks)
	if divider < 0 || divider+1 >= len(tracks) || len(rendered) != len(tracks) {
		tracer().Debugf("resize of divider %d ignored for %d tracks", divider, len(tracks))
		return r
	}
	if zoom <= 0 {
		zoom = 1
	}
	delta = delta / zoom
	before, after := divider, divider+1
	if !tracks[before].IsResizable() && !tracks[after].IsResizable() {
		tracer().Debugf("tracks %d and %d have no resizable size", before, after)
		return r
	}
	r[before] = rescale(tracks[before], rendered[before], math.Max(0, rendered[before]+delta))
	r[after] = rescale(tracks[after], rendered[after], math.Max(0, rendered[after]-delta))
	tracer().Debugf("resized tracks %s -> %s", Serialize(tracks), Serialize(r))
	return r
}

func rescale(t Track, originalPx, newPx float64) Track {
	switch t.Unit {
	case Px:
		return PxTrack(math.Round(newPx))
	case Fr:
		if originalPx <= 0 {
			return t
		}
		fr := t.Value * newPx / originalPx
		return FrTrack(math.Max(MinFr, roundTo(fr, FrDecimals)))
	}
	return t
}

func roundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
