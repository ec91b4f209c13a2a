// Package layout implements a pure-Go wrapping flow layout engine for
// retained-mode UI trees.
//
// Children are packed left-to-right into rows by greedy first-fit wrapping:
// each child goes into the current row unless it would overflow the available
// width, in which case a new row starts beneath it. Rows are then positioned
// according to the container's gravity (independent horizontal and vertical
// alignment), with per-child vertical overrides.
//
// The engine runs in two passes. [Measure] packs children into rows and
// returns a [Pass] holding the row partition and the container's resolved
// size. [Pass.Layout] assigns every child its final rectangle once the parent
// has settled the container's rectangle. Types are re-exported through the
// root flow package for public consumption.
package layout
