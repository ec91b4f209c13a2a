package layout

import "math"

// Unbounded marks an offered dimension that carries no constraint.
// It propagates through measurement unchanged: padding and margins are never
// subtracted from it, and wrapping is disabled when the available width is
// Unbounded.
const Unbounded = math.MaxInt

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitWrap  Unit = iota // Size derived from packed children
	UnitFixed             // Absolute cells
	UnitFill              // Fill the parent's offered space
)

// Value represents a dimension that can be wrap-content, fixed, or
// fill-parent.
type Value struct {
	Cells int
	Unit  Unit
}

// Wrap returns a Value sized from content.
func Wrap() Value {
	return Value{Unit: UnitWrap}
}

// Fixed returns a Value representing an absolute number of cells.
func Fixed(n int) Value {
	return Value{Cells: n, Unit: UnitFixed}
}

// Fill returns a Value that fills the parent's offered space.
func Fill() Value {
	return Value{Unit: UnitFill}
}

// IsWrap returns true if this value should be computed from content.
func (v Value) IsWrap() bool {
	return v.Unit == UnitWrap
}

// Resolve computes the final dimension given the offered space and the
// content-derived size. A fixed declaration wins over the computed content
// size; fill takes the offered space; wrap takes the content size capped at
// the offered space. An Unbounded offer never caps and makes fill fall back
// to content.
func (v Value) Resolve(offered, content int) int {
	switch v.Unit {
	case UnitFixed:
		return v.Cells
	case UnitFill:
		if offered == Unbounded {
			return content
		}
		return offered
	default:
		if offered != Unbounded && content > offered {
			return offered
		}
		return content
	}
}

// Shrink subtracts n from an offered dimension, clamping at zero so negative
// space never propagates to children. Unbounded passes through untouched.
func Shrink(offered, n int) int {
	if offered == Unbounded {
		return Unbounded
	}
	if r := offered - n; r > 0 {
		return r
	}
	return 0
}
