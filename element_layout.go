package flow

import "github.com/grindlemire/go-flow/internal/layout"

// --- Implement Layoutable interface ---

// LayoutStyle returns the layout style properties for this element.
func (e *Element) LayoutStyle() LayoutStyle {
	return e.style
}

// Visibility reports whether this element takes part in layout.
func (e *Element) Visibility() Visibility {
	return e.visibility
}

// LayoutChildren returns the children to be laid out, including Gone ones;
// the engine skips those itself.
func (e *Element) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(e.children))
	for i, child := range e.children {
		result[i] = child
	}
	return result
}

// SetLayout is called by the layout engine to store computed layout.
func (e *Element) SetLayout(l LayoutResult) {
	e.layout = l
}

// GetLayout returns the last computed layout.
func (e *Element) GetLayout() LayoutResult {
	return e.layout
}

// MeasuredSize returns the size cached by the last Measure call.
func (e *Element) MeasuredSize() Size {
	return e.measured
}

// Measure resolves the element's size against the offered constraints.
// Containers pack their children into rows; leaves consult their MeasureFunc
// for a content size. Either offered dimension may be Unbounded, which
// propagates to children unchanged and disables wrapping for width.
//
// The result is cached until the element is mutated or the offer changes, so
// repeated measurement with identical inputs is cheap and idempotent.
func (e *Element) Measure(offeredWidth, offeredHeight int) Size {
	offer := Size{Width: offeredWidth, Height: offeredHeight}
	if !e.dirty && e.hasMeasure && e.measuredFor == offer {
		return e.measured
	}

	if len(e.children) > 0 {
		e.pass = layout.Measure(e, offeredWidth, offeredHeight)
		e.measured = e.pass.Size()
	} else {
		var content Size
		if e.measureFunc != nil {
			content = e.measureFunc(
				layout.Shrink(offeredWidth, e.style.Padding.Horizontal()),
				layout.Shrink(offeredHeight, e.style.Padding.Vertical()),
			)
		}
		e.pass = nil
		e.measured = Size{
			Width:  e.style.Width.Resolve(offeredWidth, content.Width+e.style.Padding.Horizontal()),
			Height: e.style.Height.Resolve(offeredHeight, content.Height+e.style.Padding.Vertical()),
		}
	}

	e.measuredFor = offer
	e.hasMeasure = true
	e.dirty = false
	return e.measured
}

// Layout assigns final rectangles to this element and every descendant,
// using the row partition captured by the matching Measure call. The final
// rectangle must be based on the same geometry the tree was measured with.
//
// parentHidden propagates an ancestor-hidden pass: the call is a silent
// no-op and no descendant receives a rectangle.
//
// Calling Layout after the tree was mutated without an intervening Measure
// is a programmer error and panics rather than handing out stale geometry.
func (e *Element) Layout(final Rect, parentHidden bool) {
	if parentHidden {
		return
	}
	if e.dirty || !e.hasMeasure {
		panic("flow: Layout without a matching Measure; re-measure first")
	}
	e.layout = LayoutResult{Rect: final, ContentRect: final.Inset(e.style.Padding)}
	e.layoutChildren(false)
}

// layoutChildren runs the positioner for this container and recurses into
// child containers. Gone subtrees propagate hidden so no stale rectangles
// are assigned beneath them.
func (e *Element) layoutChildren(parentHidden bool) {
	if len(e.children) == 0 {
		return
	}
	if !parentHidden && e.pass == nil {
		panic("flow: Layout without a matching Measure; re-measure first")
	}
	if !parentHidden {
		e.pass.Layout(e.layout.Rect, false)
	}
	for _, child := range e.children {
		child.layoutChildren(parentHidden || child.visibility == Gone)
	}
}

// Rect returns the computed border box.
func (e *Element) Rect() Rect {
	return e.layout.Rect
}

// ContentRect returns the computed content area (border box minus padding).
func (e *Element) ContentRect() Rect {
	return e.layout.ContentRect
}
