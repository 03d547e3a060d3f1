package document

// edit is a copy-on-write transaction on one artboard of a project.
// Elements are cloned on first write access; the original project is
// never touched.
type edit struct {
	p      *Project
	ab     *Artboard // private copy of the artboard under edit
	cloned map[string]bool
}

// beginEdit starts an edit on artboard abID of p. If the artboard does not
// exist, ok is false.
func beginEdit(p *Project, abID string) (*edit, bool) {
	ab, ok := p.Artboard(abID)
	if !ok {
		tracer().Debugf("no artboard %q", abID)
		return nil, false
	}
	return &edit{p: p, ab: ab.clone(), cloned: make(map[string]bool)}, true
}

func (ed *edit) element(id string) (*Element, bool) {
	return ed.ab.Element(id)
}

// mutable returns a private copy of element id, cloning it on first access.
func (ed *edit) mutable(id string) *Element {
	e, ok := ed.ab.Elements[id]
	assertThat(ok, "mutable access to missing element %s", id)
	if !ed.cloned[id] {
		e = e.clone()
		ed.ab.Elements[id] = e
		ed.cloned[id] = true
	}
	return e
}

// put adds a new element, owned by this edit.
func (ed *edit) put(e *Element) {
	ed.ab.Elements[e.ID] = e
	ed.cloned[e.ID] = true
}

// children returns the child list of parentID ("" for root) for reading.
func (ed *edit) children(parentID string) []string {
	return Siblings(ed.ab, parentID)
}

// setChildren replaces the child list of parentID ("" for root).
func (ed *edit) setChildren(parentID string, ids []string) {
	if parentID == "" {
		ed.ab.RootChildren = ids
		return
	}
	ed.mutable(parentID).Children = ids
}

// insert splices ids into the child list of parentID at index i.
func (ed *edit) insert(parentID string, i int, ids ...string) {
	list := ed.children(parentID)
	i = clampIndex(i, len(list))
	ed.setChildren(parentID, insertAt(list, i, ids...))
}

// detach removes id from its current location.
func (ed *edit) detach(id string) {
	if pid, ok := ParentOf(ed.ab, id); ok {
		ed.setChildren(pid, removeID(ed.children(pid), id))
	}
}

// commit returns a new project holding the edited artboard.
func (ed *edit) commit() *Project {
	return ed.p.withArtboard(ed.ab)
}
