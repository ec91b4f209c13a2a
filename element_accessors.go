package flow

// Style returns a copy of the element's layout style.
func (e *Element) Style() LayoutStyle {
	return e.style
}

// SetStyle replaces the element's layout style and marks it dirty.
func (e *Element) SetStyle(style LayoutStyle) {
	e.style = style
	e.MarkDirty()
}

// SetVisibility changes whether the element takes part in layout.
// A Gone element contributes no space and is excluded from row packing, but
// still receives an explicit zero rectangle on the next layout pass.
func (e *Element) SetVisibility(v Visibility) {
	if e.visibility == v {
		return
	}
	e.visibility = v
	e.MarkDirty()
}

// SetGap sets the spacing between consecutive children within a row.
func (e *Element) SetGap(cells int) {
	e.style.Gap = cells
	e.MarkDirty()
}

// SetGravity sets the container's horizontal and vertical alignment.
func (e *Element) SetGravity(h HAlign, v VAlign) {
	e.style.Gravity = Gravity{Horizontal: h, Vertical: v}
	e.MarkDirty()
}

// SetMargin sets the element's outer spacing.
func (e *Element) SetMargin(m Edges) {
	e.style.Margin = m
	e.MarkDirty()
}

// SetPadding sets the element's inner spacing.
func (e *Element) SetPadding(p Edges) {
	e.style.Padding = p
	e.MarkDirty()
}

// SetMeasureFunc sets the content measurement hook for a leaf element.
func (e *Element) SetMeasureFunc(fn MeasureFunc) {
	e.measureFunc = fn
	e.MarkDirty()
}
