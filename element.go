package flow

import "github.com/grindlemire/go-flow/internal/layout"

// Compile-time check that Element implements Layoutable.
var _ Layoutable = (*Element)(nil)

// MeasureFunc computes the content size of a leaf element given the space
// offered for content (the element's padding is already subtracted). Either
// dimension may be Unbounded. The result must depend only on the offered
// constraints and the element's own state.
type MeasureFunc func(offeredWidth, offeredHeight int) Size

// Element is a layout container with box-model spacing and visibility.
// It implements Layoutable and owns its children directly.
type Element struct {
	// Tree structure (single source of truth)
	children []*Element
	parent   *Element

	// Layout properties
	style      LayoutStyle
	visibility Visibility
	layout     LayoutResult
	dirty      bool

	// Measurement state, valid until the next mutation
	measured    Size
	measuredFor Size
	hasMeasure  bool
	pass        *layout.Pass

	// Content measurement hook for leaf elements
	measureFunc MeasureFunc
}

// New creates a new Element with the given options.
// By default an Element is visible and wraps its content.
func New(opts ...Option) *Element {
	e := &Element{
		style: DefaultLayoutStyle(),
		dirty: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Arrange measures root against the available space and lays it out at the
// origin. It is the common entry point for a full pass over a tree.
func Arrange(root *Element, availableWidth, availableHeight int) Size {
	size := root.Measure(availableWidth, availableHeight)
	root.Layout(NewRect(0, 0, size.Width, size.Height), false)
	return size
}
