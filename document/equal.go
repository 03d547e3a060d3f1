package document

// Equal is a predicate wether two projects hold the same content. It takes
// advantage of structural sharing: shared artboards and elements are
// not compared in depth.
//
// Equal is used to detect edits which, taken together, did not change
// anything, e.g. dragging an element away and back to its original slot.
func Equal(p, q *Project) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil {
		return false
	}
	if p.ID != q.ID || p.Name != q.Name || !sameIDs(p.ArtboardOrder, q.ArtboardOrder) ||
		len(p.Artboards) != len(q.Artboards) {
		return false
	}
	for id, ab := range p.Artboards {
		other, ok := q.Artboards[id]
		if !ok || !equalArtboards(ab, other) {
			return false
		}
	}
	return true
}

func equalArtboards(a, b *Artboard) bool {
	if a == b {
		return true
	}
	if a.ID != b.ID || a.Name != b.Name || a.Width != b.Width || a.Height != b.Height ||
		a.X != b.X || a.Y != b.Y || len(a.Elements) != len(b.Elements) ||
		!sameIDs(a.RootChildren, b.RootChildren) {
		return false
	}
	for id, e := range a.Elements {
		f, ok := b.Elements[id]
		if !ok {
			return false
		}
		if e != f && (!e.sameAs(f) || !sameIDs(e.Children, f.Children)) {
			return false
		}
	}
	return true
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
