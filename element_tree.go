package flow

// --- Element's own API ---

// AddChild appends children to this Element and marks the tree dirty.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		child.parent = e
		e.children = append(e.children, child)
	}
	e.MarkDirty()
}

// RemoveChild removes a child from this Element, preserving the declaration
// order of the remaining children. Returns true if the child was found.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			e.MarkDirty()
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this Element.
func (e *Element) RemoveAllChildren() {
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
	e.MarkDirty()
}

// Children returns the child elements in declaration order.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// MarkDirty marks this Element and its ancestors as needing re-measurement.
// Called automatically by tree and style mutations; call it manually after
// changing state a MeasureFunc depends on.
//
// The walk never stops early at an already-dirty node: Gone children keep
// their dirty flag across passes (they are skipped by measurement), so a
// dirty node does not imply dirty ancestors.
func (e *Element) MarkDirty() {
	for elem := e; elem != nil; elem = elem.parent {
		elem.dirty = true
	}
}

// IsDirty returns whether this element needs re-measurement.
func (e *Element) IsDirty() bool {
	return e.dirty
}
