// Package model defines the core data types of the placement engine: cells,
// pins, nets, the occupancy grid, and the Placement container that owns
// them all.
//
// What:
//
//   - Cell: an axis-aligned rectangle at an integer position, optionally fixed.
//   - Pin: a connection point at a fixed offset from a cell's lower-left corner.
//   - Net: an ordered group of pins to be wired together.
//   - Grid: a W×H occupancy lattice mapping positions to cell ids.
//   - Placement: the owning container for cells, nets, and the grid.
//
// Invariant:
//
//	Between pipeline stages, every grid position covered by exactly one
//	cell's rectangle carries that cell's id, every uncovered position
//	carries EmptyCell, and no two cell rectangles intersect. During
//	annealing this invariant is relaxed: overlaps are permitted and the
//	grid records only the last writer at an overlapping position.
//
// See: Placement.Refresh, which restores grid/position consistency after
// any bulk mutation of cell positions.
package model
