package editor

import (
	"github.com/npillmayer/artboard/document"
	"github.com/npillmayer/artboard/style"
)

// AddArtboard appends a new artboard to the project. If there is no active
// artboard yet, the new one becomes active.
func (ed *Editor) AddArtboard(name string, width, height float64) (id string) {
	ed.update(func() bool {
		var next *document.Project
		next, id = document.AddArtboard(ed.project, name, width, height, ed.opts.IDs)
		ed.commitLocked(next)
		if ed.artboard == "" {
			ed.artboard = id
		}
		return true
	})
	return
}

// RemoveArtboard removes an artboard. If it was the active one, the first
// remaining artboard becomes active.
func (ed *Editor) RemoveArtboard(id string) bool {
	return ed.update(func() bool {
		next, changed := document.RemoveArtboard(ed.project, id)
		if !changed {
			return false
		}
		ed.commitLocked(next)
		if ed.artboard == id {
			ed.artboard = ""
			ed.selection = nil
			if len(next.ArtboardOrder) > 0 {
				ed.artboard = next.ArtboardOrder[0]
			}
		}
		return true
	})
}

// UpdateArtboard changes name, size or position of an artboard.
func (ed *Editor) UpdateArtboard(id string, patch document.ArtboardPatch) bool {
	return ed.edit(func(p *document.Project, _ string) (*document.Project, bool) {
		return document.UpdateArtboard(p, id, patch)
	})
}

// AddElement adds an element of type t to the active artboard, as a child of
// parentID (or at root level), and selects it.
func (ed *Editor) AddElement(t document.ElementType, parentID string) (id string) {
	ed.update(func() bool {
		next, newID, changed := document.AddElement(ed.project, ed.artboard, t, parentID, ed.opts.IDs)
		if !changed {
			return false
		}
		ed.commitLocked(next)
		ed.selection = []string{newID}
		id = newID
		return true
	})
	return
}

// UpdateElement applies patch to an element of the active artboard, writing
// style deltas for the active breakpoint.
func (ed *Editor) UpdateElement(id string, patch document.Patch) bool {
	return ed.edit(func(p *document.Project, ab string) (*document.Project, bool) {
		return document.UpdateElement(p, ab, id, patch, ed.bp)
	})
}

// UpdateSelected applies patch to every selected element.
func (ed *Editor) UpdateSelected(patch document.Patch) bool {
	return ed.edit(func(p *document.Project, ab string) (*document.Project, bool) {
		return document.UpdateMany(p, ab, ed.selection, patch, ed.bp)
	})
}

// ClearBreakpointStyle resets all overrides of element id at breakpoint bp.
func (ed *Editor) ClearBreakpointStyle(id string, bp style.Breakpoint) bool {
	return ed.edit(func(p *document.Project, ab string) (*document.Project, bool) {
		return document.ClearBreakpointStyle(p, ab, id, bp)
	})
}

// MoveElement moves element id to position index within the children of
// parentID ("" for root level).
func (ed *Editor) MoveElement(id, parentID string, index int) bool {
	return ed.edit(func(p *document.Project, ab string) (*document.Project, bool) {
		return document.MoveElement(p, ab, id, parentID, index)
	})
}

// DeleteElement deletes element id with all of its descendants. If more than
// one element is selected, all selected elements are deleted as well.
func (ed *Editor) DeleteElement(id string) bool {
	return ed.edit(func(p *document.Project, ab string) (*document.Project, bool) {
		targets := []string{id}
		if len(ed.selection) > 1 {
			targets = append(targets, ed.selection...)
		}
		return document.DeleteElements(p, ab, targets...)
	})
}

// DeleteSelected deletes all selected elements.
func (ed *Editor) DeleteSelected() bool {
	return ed.edit(func(p *document.Project, ab string) (*document.Project, bool) {
		return document.DeleteElements(p, ab, ed.selection...)
	})
}

// Copy puts the primary selection and its subtree onto the clipboard.
func (ed *Editor) Copy() bool {
	return ed.update(func() bool {
		if len(ed.selection) == 0 {
			return false
		}
		clip, ok := document.Copy(ed.project, ed.artboard, ed.selection[0])
		if !ok {
			return false
		}
		ed.clipboard = clip
		return true
	})
}

// Paste inserts a copy of the clipboard relative to the primary selection
// (see document.Paste) and selects it.
func (ed *Editor) Paste() (id string) {
	ed.update(func() bool {
		sel := ""
		if len(ed.selection) > 0 {
			sel = ed.selection[0]
		}
		next, newID, changed := document.Paste(ed.project, ed.artboard, ed.clipboard, sel, ed.opts.IDs)
		if !changed {
			return false
		}
		ed.commitLocked(next)
		ed.selection = []string{newID}
		id = newID
		return true
	})
	return
}

// Duplicate duplicates the primary selection right after itself and selects
// the copy.
func (ed *Editor) Duplicate() (id string) {
	ed.update(func() bool {
		if len(ed.selection) == 0 {
			return false
		}
		next, newID, changed := document.Duplicate(ed.project, ed.artboard, ed.selection[0], ed.opts.IDs)
		if !changed {
			return false
		}
		ed.commitLocked(next)
		ed.selection = []string{newID}
		id = newID
		return true
	})
	return
}

// WrapSelection wraps the selected elements into a new container, which then
// becomes selected. The selected elements have to be siblings.
func (ed *Editor) WrapSelection() (id string) {
	ed.update(func() bool {
		next, box, changed := document.WrapInContainer(ed.project, ed.artboard, ed.selection, ed.opts.IDs)
		if !changed {
			return false
		}
		ed.commitLocked(next)
		ed.selection = []string{box}
		id = box
		return true
	})
	return
}
