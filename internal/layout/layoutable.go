package layout

// Layoutable is the interface for anything that can participate in flow
// layout. The engine works entirely with this interface, enabling custom
// implementations.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this element.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out, in declaration
	// order, including Gone children (the engine skips those itself).
	LayoutChildren() []Layoutable

	// Visibility reports whether this element takes part in layout.
	Visibility() Visibility

	// Measure resolves the element's size against the offered constraints.
	// Either dimension may be Unbounded. The result must be a pure function
	// of the offered constraints and the element's own state, cached by the
	// element until the next Measure call.
	Measure(offeredWidth, offeredHeight int) Size

	// MeasuredSize returns the size cached by the last Measure call.
	MeasuredSize() Size

	// SetLayout is called by the engine to store the computed layout.
	SetLayout(Layout)

	// GetLayout returns the last computed layout.
	GetLayout() Layout
}
