package document

import (
	"github.com/npillmayer/artboard/idgen"
)

// Clipboard is a value snapshot of one element together with all of its
// descendants, keyed by their original ids. It is independent of any edits
// applied to the project after copying.
type Clipboard struct {
	RootID   string
	Elements map[string]*Element
}

// IsEmpty is true if the clipboard holds nothing.
func (clip Clipboard) IsEmpty() bool {
	return clip.RootID == "" || len(clip.Elements) == 0
}

// Copy captures element id and its subtree.
func Copy(p *Project, abID, id string) (Clipboard, bool) {
	ab, ok := p.Artboard(abID)
	if !ok {
		return Clipboard{}, false
	}
	ids := Descendants(ab, id)
	if len(ids) == 0 {
		return Clipboard{}, false
	}
	clip := Clipboard{RootID: id, Elements: make(map[string]*Element, len(ids))}
	for _, d := range ids {
		clip.Elements[d] = ab.Elements[d].clone()
	}
	return clip, true
}

// instantiate creates copies of the clipboard elements with fresh ids for
// every node. Children lists are rewritten through the old-to-new id map.
// Only elements reachable from the clipboard root are copied.
func (clip Clipboard) instantiate(gen idgen.Generator) (rootID string, elements []*Element) {
	if gen == nil {
		gen = idgen.Default
	}
	remap := make(map[string]string, len(clip.Elements))
	var order []string
	var collect func(string)
	collect = func(id string) {
		e, ok := clip.Elements[id]
		if !ok || remap[id] != "" {
			return
		}
		remap[id] = gen()
		order = append(order, id)
		for _, ch := range e.Children {
			collect(ch)
		}
	}
	collect(clip.RootID)
	for _, old := range order {
		e := clip.Elements[old].clone()
		e.ID = remap[old]
		children := make([]string, 0, len(e.Children))
		for _, ch := range e.Children {
			if n, ok := remap[ch]; ok {
				children = append(children, n)
			}
		}
		e.Children = children
		elements = append(elements, e)
	}
	return remap[clip.RootID], elements
}

// Paste inserts a fresh copy of the clipboard's subtree. Placement depends on
// the current selection: into the selected element if it is a container,
// right after the selected element if it is a leaf, or at the end of the
// root list if nothing (or an unknown element) is selected.
//
// Paste returns the id of the new subtree root.
func Paste(p *Project, abID string, clip Clipboard, selection string, gen idgen.Generator) (*Project, string, bool) {
	if clip.IsEmpty() {
		return p, "", false
	}
	ed, ok := beginEdit(p, abID)
	if !ok {
		return p, "", false
	}
	parentID, index := "", -1
	if sel, ok := ed.element(selection); ok {
		if sel.IsContainer() {
			parentID = sel.ID
		} else if pid, i, ok := IndexOf(ed.ab, sel.ID); ok {
			parentID, index = pid, i+1
		}
	}
	rootID, elements := clip.instantiate(gen)
	for _, e := range elements {
		ed.put(e)
	}
	ed.insert(parentID, index, rootID)
	tracer().P("artboard", abID).Infof("pasted %d element(s) as %s", len(elements), rootID)
	return ed.commit(), rootID, true
}

// CopySuffix is appended to the name of a duplicated element.
const CopySuffix = " (copy)"

// Duplicate copies element id and its subtree and inserts the copy right
// after the original, within the same parent. The name of the copy gets
// CopySuffix appended.
func Duplicate(p *Project, abID, id string, gen idgen.Generator) (*Project, string, bool) {
	clip, ok := Copy(p, abID, id)
	if !ok {
		return p, "", false
	}
	ed, _ := beginEdit(p, abID)
	parentID, index, ok := IndexOf(ed.ab, id)
	if !ok {
		return p, "", false
	}
	rootID, elements := clip.instantiate(gen)
	for _, e := range elements {
		if e.ID == rootID {
			e.Name += CopySuffix
		}
		ed.put(e)
	}
	ed.insert(parentID, index+1, rootID)
	tracer().P("artboard", abID).Infof("duplicated %s as %s", id, rootID)
	return ed.commit(), rootID, true
}
