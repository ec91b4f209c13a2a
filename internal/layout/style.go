package layout

// HAlign specifies how a row is positioned inside the container's width.
type HAlign uint8

const (
	HAlignStart  HAlign = iota // Pack rows at the left edge
	HAlignEnd                  // Pack rows at the right edge
	HAlignCenter               // Center rows
)

// VAlign specifies how a child is positioned inside its row's height.
type VAlign uint8

const (
	VAlignTop    VAlign = iota // Align to the row's top
	VAlignBottom               // Align to the row's bottom
	VAlignCenter               // Center within the row
)

// Gravity pairs the container's horizontal and vertical alignment.
// The two axes are independent; there is no packed flags value.
type Gravity struct {
	Horizontal HAlign
	Vertical   VAlign
}

// Visibility controls whether a child takes part in layout.
type Visibility uint8

const (
	// Visible children are measured, packed, and positioned.
	Visible Visibility = iota
	// Gone children contribute no space and are excluded from packing,
	// but still receive an explicit zero rectangle during layout.
	Gone
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width  Value
	Height Value

	// Flow container properties
	Gravity Gravity
	Gap     int // Space between consecutive children within a row

	// TotalWeight is accepted for interface symmetry with sibling layout
	// strategies and has no effect: proportional fill along the wrap axis
	// is unsupported.
	TotalWeight float64

	// Flow item properties
	VAlignSelf *VAlign // Override parent's vertical gravity (nil = inherit)

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults: wrap-content sizing,
// top-left gravity, no gap or spacing.
func DefaultStyle() Style {
	return Style{
		Width:  Wrap(),
		Height: Wrap(),
	}
}
