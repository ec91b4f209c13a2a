// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flow

import "github.com/grindlemire/go-flow/internal/layout"

// HAlign specifies how a row is positioned inside the container's width.
type HAlign = layout.HAlign

const (
	HAlignStart  = layout.HAlignStart
	HAlignEnd    = layout.HAlignEnd
	HAlignCenter = layout.HAlignCenter
)

// VAlign specifies how a child is positioned inside its row's height.
type VAlign = layout.VAlign

const (
	VAlignTop    = layout.VAlignTop
	VAlignBottom = layout.VAlignBottom
	VAlignCenter = layout.VAlignCenter
)

// Gravity pairs the container's horizontal and vertical alignment.
type Gravity = layout.Gravity

// Visibility controls whether a child takes part in layout.
type Visibility = layout.Visibility

const (
	Visible = layout.Visible
	Gone    = layout.Gone
)

// Value represents a dimension (wrap-content, fixed, or fill-parent).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitWrap  = layout.UnitWrap
	UnitFixed = layout.UnitFixed
	UnitFill  = layout.UnitFill
)

// Unbounded marks an offered dimension that carries no constraint.
const Unbounded = layout.Unbounded

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// LayoutResult holds the computed layout for a node.
type LayoutResult = layout.Layout

// Layoutable is the interface that nodes must implement for layout calculation.
type Layoutable = layout.Layoutable

// Wrap creates a Value that sizes to content.
func Wrap() Value {
	return layout.Wrap()
}

// Fixed creates a Value with a fixed cell count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Fill creates a Value that fills the parent's offered space.
func Fill() Value {
	return layout.Fill()
}

// DefaultLayoutStyle returns a Style with default values.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
