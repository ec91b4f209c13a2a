// Package flow provides a wrapping flow layout for retained-mode UI trees.
//
// Users import this single package for the complete public API: element
// construction, tree management, and the two-pass measure/layout protocol.
// Children are arranged left-to-right and wrap to a new row whenever the next
// child would overflow the available width; rows are then positioned by the
// container's gravity, with optional per-child vertical overrides.
//
// A layout pass is always measure-then-layout on the same geometry basis:
//
//	size := root.Measure(availableWidth, availableHeight)
//	root.Layout(flow.NewRect(0, 0, size.Width, size.Height), false)
//
// or simply [Arrange]. Mutating the tree between the two calls invalidates
// the measurement; Layout fails fast rather than handing out stale geometry.
package flow
