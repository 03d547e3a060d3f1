package document

import (
	"errors"
	"fmt"
)

// ErrInvalidTree is returned if an artboard violates the strict forest
// invariant, e.g. after loading a corrupt document.
var ErrInvalidTree = errors.New("element tree is not a strict forest")

// ErrStop may be returned by a WalkFunc to end a walk early. Walk will then
// return nil.
var ErrStop = errors.New("stop walking")

// ParentOf returns the id of the parent of element id. For root-level
// elements parentID is "". found is false if id is not referenced anywhere.
func ParentOf(ab *Artboard, id string) (parentID string, found bool) {
	if ab == nil {
		return "", false
	}
	if indexOf(ab.RootChildren, id) >= 0 {
		return "", true
	}
	for pid, e := range ab.Elements {
		if indexOf(e.Children, id) >= 0 {
			return pid, true
		}
	}
	return "", false
}

// Siblings returns the child list of parentID, or the root list if parentID
// is "". For an unknown parent, nil is returned. Clients must not modify the
// returned slice.
func Siblings(ab *Artboard, parentID string) []string {
	if parentID == "" {
		return ab.RootChildren
	}
	if p, ok := ab.Element(parentID); ok {
		return p.Children
	}
	return nil
}

// IndexOf locates element id: its parent and its index within the parent's
// children (or the root list).
func IndexOf(ab *Artboard, id string) (parentID string, index int, ok bool) {
	parentID, ok = ParentOf(ab, id)
	if !ok {
		return "", -1, false
	}
	return parentID, indexOf(Siblings(ab, parentID), id), true
}

// Descendants collects the ids of the subtree rooted at id, including id
// itself as the first entry, in depth-first pre-order. If id does not exist,
// an empty slice is returned.
func Descendants(ab *Artboard, id string) []string {
	var ids []string
	seen := make(map[string]bool)
	var collect func(string)
	collect = func(id string) {
		e, ok := ab.Element(id)
		if !ok || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
		for _, ch := range e.Children {
			collect(ch)
		}
	}
	collect(id)
	return ids
}

// Contains is a predicate wether element id is part of the subtree rooted at
// root. Contains is reflexive.
func Contains(ab *Artboard, root, id string) bool {
	if root == id {
		_, ok := ab.Element(id)
		return ok
	}
	return IsAncestor(ab, root, id)
}

// IsAncestor is a predicate wether ancestor is a proper ancestor of id.
func IsAncestor(ab *Artboard, ancestor, id string) bool {
	_, found := AncestorWith(ab, id, func(e *Element) bool {
		return e.ID == ancestor
	})
	return found
}

// Predicate is a function type to match elements of a tree.
type Predicate func(*Element) bool

// IsContainerElement is a predicate matching container elements.
func IsContainerElement(e *Element) bool {
	return e.IsContainer()
}

// AncestorWith walks up from element id (exclusively) and returns the first
// ancestor matching predicate.
func AncestorWith(ab *Artboard, id string, predicate Predicate) (*Element, bool) {
	seen := map[string]bool{id: true}
	for {
		pid, ok := ParentOf(ab, id)
		if !ok || pid == "" || seen[pid] {
			return nil, false
		}
		seen[pid] = true
		parent := ab.Elements[pid]
		if predicate(parent) {
			return parent, true
		}
		id = pid
	}
}

// WalkFunc is called by Walk for every element, together with its depth
// (root-level elements have depth 0).
type WalkFunc func(e *Element, depth int) error

// Walk traverses the element forest of ab in depth-first pre-order, starting
// with the root-level elements in order. If fn returns an error, the walk
// stops. ErrStop ends the walk without an error.
func Walk(ab *Artboard, fn WalkFunc) error {
	var walk func(ids []string, depth int) error
	walk = func(ids []string, depth int) error {
		for _, id := range ids {
			e, ok := ab.Element(id)
			if !ok {
				continue
			}
			if err := fn(e, depth); err != nil {
				return err
			}
			if depth > len(ab.Elements) {
				return fmt.Errorf("%w: cycle at %s", ErrInvalidTree, id)
			}
			if err := walk(e.Children, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(ab.RootChildren, 0); err != nil && !errors.Is(err, ErrStop) {
		return err
	}
	return nil
}

// Validate checks that ab is a strict forest: every id referenced by
// RootChildren or by any Children list exists in Elements, every element is
// referenced from exactly one place, and every element is reachable from the
// root list. Errors wrap ErrInvalidTree.
func Validate(ab *Artboard) error {
	refs := make(map[string]int, len(ab.Elements))
	count := func(ids []string, from string) error {
		for _, id := range ids {
			if _, ok := ab.Elements[id]; !ok {
				return fmt.Errorf("%w: %s references missing element %s", ErrInvalidTree, from, id)
			}
			refs[id]++
			if refs[id] > 1 {
				return fmt.Errorf("%w: element %s referenced more than once", ErrInvalidTree, id)
			}
		}
		return nil
	}
	if err := count(ab.RootChildren, "root"); err != nil {
		return err
	}
	for id, e := range ab.Elements {
		if e == nil || e.ID != id {
			return fmt.Errorf("%w: element entry %s has mismatching id", ErrInvalidTree, id)
		}
		if len(e.Children) > 0 && !e.IsContainer() {
			return fmt.Errorf("%w: leaf %s has children", ErrInvalidTree, id)
		}
		if err := count(e.Children, id); err != nil {
			return err
		}
	}
	for id := range ab.Elements {
		if refs[id] == 0 {
			return fmt.Errorf("%w: element %s is orphaned", ErrInvalidTree, id)
		}
	}
	// With every element referenced exactly once, a cycle is the only way to
	// be unreachable from the root list.
	reached := 0
	if err := Walk(ab, func(*Element, int) error {
		reached++
		return nil
	}); err != nil {
		return err
	}
	if reached != len(ab.Elements) {
		return fmt.Errorf("%w: %d elements unreachable from root", ErrInvalidTree, len(ab.Elements)-reached)
	}
	return nil
}

// ValidateProject checks the artboard order of p and validates every artboard.
func ValidateProject(p *Project) error {
	if len(p.ArtboardOrder) != len(p.Artboards) {
		return fmt.Errorf("%w: artboard order lists %d of %d artboards", ErrInvalidTree,
			len(p.ArtboardOrder), len(p.Artboards))
	}
	seen := make(map[string]bool, len(p.ArtboardOrder))
	for _, id := range p.ArtboardOrder {
		if seen[id] {
			return fmt.Errorf("%w: artboard %s listed twice", ErrInvalidTree, id)
		}
		seen[id] = true
		ab, ok := p.Artboards[id]
		if !ok || ab == nil {
			return fmt.Errorf("%w: artboard order references missing artboard %s", ErrInvalidTree, id)
		}
		if ab.ID != id {
			return fmt.Errorf("%w: artboard entry %s has mismatching id", ErrInvalidTree, id)
		}
		if err := Validate(ab); err != nil {
			return fmt.Errorf("artboard %s: %w", id, err)
		}
	}
	return nil
}
