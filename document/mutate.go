package document

import (
	"github.com/npillmayer/artboard/idgen"
	"github.com/npillmayer/artboard/style"
)

// AddElement creates an element of type t with default styles and appends it
// to the children of parentID. If parentID is empty, unknown or denotes a leaf,
// the element is appended to the root list instead.
//
// AddElement returns the new project and the id of the new element.
func AddElement(p *Project, abID string, t ElementType, parentID string, gen idgen.Generator) (*Project, string, bool) {
	if !t.IsValid() {
		return p, "", false
	}
	ed, ok := beginEdit(p, abID)
	if !ok {
		return p, "", false
	}
	if gen == nil {
		gen = idgen.Default
	}
	if parent, ok := ed.element(parentID); !ok || !parent.IsContainer() {
		parentID = ""
	}
	e := newElement(gen(), t)
	ed.put(e)
	ed.insert(parentID, -1, e.ID)
	tracer().P("artboard", abID).Infof("add %v to parent %q", e, parentID)
	return ed.commit(), e.ID, true
}

// Patch holds optional changes to an element. Nil fields are left untouched.
//
// Styles is a delta: its properties are merged into the style record the
// patch is written to. A property with an empty value removes the property.
type Patch struct {
	Name      *string
	ClassName *string
	Position  *PositionMode
	Pin       *Pin
	Content   *string
	Styles    style.Set
}

// Rename returns a copy of pt which renames an element.
func (pt Patch) Rename(name string) Patch {
	pt.Name = &name
	return pt
}

// WithClass returns a copy of pt which sets an explicit class name.
func (pt Patch) WithClass(class string) Patch {
	pt.ClassName = &class
	return pt
}

// WithPosition returns a copy of pt which sets the position mode.
func (pt Patch) WithPosition(m PositionMode) Patch {
	pt.Position = &m
	return pt
}

// WithPin returns a copy of pt which sets the pin offsets.
func (pt Patch) WithPin(pin Pin) Patch {
	pt.Pin = &pin
	return pt
}

// WithContent returns a copy of pt which sets the text content.
func (pt Patch) WithContent(content string) Patch {
	pt.Content = &content
	return pt
}

// WithStyles returns a copy of pt carrying a style delta.
func (pt Patch) WithStyles(delta style.Set) Patch {
	pt.Styles = delta
	return pt
}

// StylePatch creates a patch consisting of a style delta only.
func StylePatch(delta style.Set) Patch {
	return Patch{Styles: delta}
}

// IsEmpty is true if pt will not change anything.
func (pt Patch) IsEmpty() bool {
	return pt.Name == nil && pt.ClassName == nil && pt.Position == nil && pt.Pin == nil &&
		pt.Content == nil && len(pt.Styles) == 0
}

// apply writes pt to e. Non-style fields always go to the element itself.
// The style delta goes to the base record for Desktop, and to the override
// record of bp otherwise.
func (pt Patch) apply(e *Element, bp style.Breakpoint) {
	if pt.Name != nil {
		e.Name = *pt.Name
		if pt.ClassName == nil {
			e.ClassName = Slugify(e.Name)
		}
	}
	if pt.ClassName != nil {
		e.ClassName = *pt.ClassName
	}
	if pt.Position != nil {
		e.Position = *pt.Position
	}
	if pt.Pin != nil {
		if pt.Pin.IsEmpty() {
			e.Pin = nil
		} else {
			pin := *pt.Pin
			e.Pin = &pin
		}
	}
	if pt.Content != nil {
		e.Content = *pt.Content
	}
	if len(pt.Styles) > 0 {
		if bp.IsBase() {
			e.Styles = e.Styles.Merge(pt.Styles)
		} else {
			e.BreakpointStyles = e.BreakpointStyles.Merge(bp, pt.Styles)
		}
	}
}

// UpdateElement applies patch to element elID, with bp being the active
// breakpoint. See Patch for how style deltas are written.
//
// If the patch would not change the element, the project is returned unchanged.
func UpdateElement(p *Project, abID, elID string, patch Patch, bp style.Breakpoint) (*Project, bool) {
	return UpdateMany(p, abID, []string{elID}, patch, bp)
}

// UpdateMany applies the same patch to every element in ids, using the same
// write rules as UpdateElement. Unknown ids are skipped.
func UpdateMany(p *Project, abID string, ids []string, patch Patch, bp style.Breakpoint) (*Project, bool) {
	if patch.IsEmpty() {
		return p, false
	}
	ed, ok := beginEdit(p, abID)
	if !ok {
		return p, false
	}
	changed := false
	for _, id := range ids {
		orig, ok := ed.element(id)
		if !ok || ed.cloned[id] {
			continue
		}
		e := orig.clone()
		patch.apply(e, bp)
		if e.sameAs(orig) {
			continue
		}
		ed.put(e)
		changed = true
	}
	if !changed {
		return p, false
	}
	tracer().P("artboard", abID).Debugf("updated %d element(s) at %s", len(ed.cloned), bp)
	return ed.commit(), true
}

// ClearBreakpointStyle removes the whole override record of breakpoint bp from
// element elID, making all its properties inherited again.
func ClearBreakpointStyle(p *Project, abID, elID string, bp style.Breakpoint) (*Project, bool) {
	if bp.IsBase() {
		return p, false
	}
	ed, ok := beginEdit(p, abID)
	if !ok {
		return p, false
	}
	if e, ok := ed.element(elID); !ok || !e.BreakpointStyles.Has(bp) {
		return p, false
	}
	e := ed.mutable(elID)
	e.BreakpointStyles = e.BreakpointStyles.Without(bp)
	return ed.commit(), true
}

// MoveElement moves element elID to position newIndex within the children of
// newParentID, or within the root list if newParentID is empty. newIndex is
// relative to the target list without the moved element; negative or
// too-large indices append.
//
// The move is refused if the new parent does not exist, is a leaf, or is the
// element itself or one of its descendants. Moving an element to the slot it
// already occupies leaves the project unchanged.
func MoveElement(p *Project, abID, elID, newParentID string, newIndex int) (*Project, bool) {
	ed, ok := beginEdit(p, abID)
	if !ok {
		return p, false
	}
	oldParentID, oldIndex, ok := IndexOf(ed.ab, elID)
	if !ok {
		return p, false
	}
	if newParentID != "" {
		parent, ok := ed.element(newParentID)
		if !ok || !parent.IsContainer() {
			return p, false
		}
		if Contains(ed.ab, elID, newParentID) {
			tracer().Debugf("refusing to move %s into its own subtree", elID)
			return p, false
		}
	}
	ed.detach(elID)
	target := ed.children(newParentID)
	newIndex = clampIndex(newIndex, len(target))
	if newParentID == oldParentID && newIndex == oldIndex {
		return p, false
	}
	ed.insert(newParentID, newIndex, elID)
	tracer().P("artboard", abID).Infof("move %s to %q[%d]", elID, newParentID, newIndex)
	return ed.commit(), true
}

// DeleteElements removes every element in ids together with all of its
// descendants. The removed ids are scrubbed from the root list and from the
// children of every remaining element.
func DeleteElements(p *Project, abID string, ids ...string) (*Project, bool) {
	ed, ok := beginEdit(p, abID)
	if !ok {
		return p, false
	}
	drop := make(map[string]bool)
	for _, id := range ids {
		for _, d := range Descendants(ed.ab, id) {
			drop[d] = true
		}
	}
	if len(drop) == 0 {
		return p, false
	}
	for id := range drop {
		delete(ed.ab.Elements, id)
	}
	ed.ab.RootChildren = removeIDs(ed.ab.RootChildren, drop)
	for id, e := range ed.ab.Elements {
		for _, ch := range e.Children {
			if drop[ch] {
				ed.mutable(id).Children = removeIDs(e.Children, drop)
				break
			}
		}
	}
	tracer().P("artboard", abID).Infof("deleted %d element(s)", len(drop))
	return ed.commit(), true
}

// WrapInContainer wraps sibling elements into a new container element, which
// takes the slot of the first of them. The wrapped elements keep their
// relative order. All ids must share the same parent, otherwise the project
// is returned unchanged.
func WrapInContainer(p *Project, abID string, ids []string, gen idgen.Generator) (*Project, string, bool) {
	ed, ok := beginEdit(p, abID)
	if !ok || len(ids) == 0 {
		return p, "", false
	}
	parentID, _, ok := IndexOf(ed.ab, ids[0])
	if !ok {
		return p, "", false
	}
	wrap := make(map[string]bool, len(ids))
	for _, id := range ids {
		if pid, ok := ParentOf(ed.ab, id); !ok || pid != parentID {
			return p, "", false
		}
		wrap[id] = true
	}
	if gen == nil {
		gen = idgen.Default
	}
	siblings := ed.children(parentID)
	box := newElement(gen(), Container)
	first := -1
	for i, id := range siblings {
		if wrap[id] {
			if first < 0 {
				first = i
			}
			box.Children = append(box.Children, id)
		}
	}
	ed.put(box)
	rest := removeIDs(siblings, wrap)
	ed.setChildren(parentID, insertAt(rest, first, box.ID))
	tracer().P("artboard", abID).Infof("wrapped %d element(s) into %s", len(ids), box.ID)
	return ed.commit(), box.ID, true
}
