package flow

// Option configures an Element.
type Option func(*Element)

// --- Dimension Options ---

// WithWidth sets a fixed width in cells.
func WithWidth(cells int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(cells)
	}
}

// WithHeight sets a fixed height in cells.
func WithHeight(cells int) Option {
	return func(e *Element) {
		e.style.Height = Fixed(cells)
	}
}

// WithSize sets both width and height in cells.
func WithSize(width, height int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(width)
		e.style.Height = Fixed(height)
	}
}

// WithFillWidth makes the element fill the parent's offered width.
// Fill along the wrap axis is resolved against the offered space only;
// proportional sharing between siblings is unsupported.
func WithFillWidth() Option {
	return func(e *Element) {
		e.style.Width = Fill()
	}
}

// WithFillHeight makes the element fill the parent's offered height.
func WithFillHeight() Option {
	return func(e *Element) {
		e.style.Height = Fill()
	}
}

// --- Flow Container Options ---

// WithGap sets the spacing between consecutive children within a row.
func WithGap(cells int) Option {
	return func(e *Element) {
		e.style.Gap = cells
	}
}

// WithGravity sets the container's horizontal and vertical alignment.
func WithGravity(h HAlign, v VAlign) Option {
	return func(e *Element) {
		e.style.Gravity = Gravity{Horizontal: h, Vertical: v}
	}
}

// WithTotalWeight records a total weight for interface symmetry with sibling
// layout strategies. It has no effect on flow layout: proportional fill along
// the wrap axis is unsupported.
func WithTotalWeight(weight float64) Option {
	return func(e *Element) {
		e.style.TotalWeight = weight
	}
}

// --- Flow Item Options ---

// WithVAlignSelf overrides the parent container's vertical gravity for this
// element only.
func WithVAlignSelf(v VAlign) Option {
	return func(e *Element) {
		e.style.VAlignSelf = &v
	}
}

// WithVisibility sets the element's initial visibility.
func WithVisibility(v Visibility) Option {
	return func(e *Element) {
		e.visibility = v
	}
}

// --- Spacing Options ---

// WithPadding sets the element's inner spacing.
func WithPadding(p Edges) Option {
	return func(e *Element) {
		e.style.Padding = p
	}
}

// WithMargin sets the element's outer spacing.
func WithMargin(m Edges) Option {
	return func(e *Element) {
		e.style.Margin = m
	}
}

// --- Content Options ---

// WithMeasureFunc sets the content measurement hook for a leaf element.
func WithMeasureFunc(fn MeasureFunc) Option {
	return func(e *Element) {
		e.measureFunc = fn
	}
}

// WithChildren appends the given children.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.AddChild(children...)
	}
}
