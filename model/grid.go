package model

// Grid is a W×H lattice of unit positions, each carrying the id of the cell
// covering it, or EmptyCell. It is adapted from the teacher's gridgraph
// package: same InBounds/row-major-index shape, but the stored value is a
// mutable occupancy id rather than a fixed input value.
type Grid struct {
	Width, Height int
	occupancy     []int // row-major: occupancy[y*Width+x]
}

// NewGrid constructs an empty (all-EmptyCell) grid of the given dimensions.
// Width or Height of 0 is legal and yields a grid with no positions.
func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height}
	g.occupancy = make([]int, width*height)
	g.clear()
	return g
}

// InBounds reports whether (x, y) lies within [0, Width) × [0, Height).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps (x, y) to the row-major index into occupancy. Caller must
// have already checked InBounds.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// At returns the cell id occupying (x, y), or EmptyCell if (x, y) is
// out of bounds or unoccupied.
func (g *Grid) At(x, y int) int {
	if !g.InBounds(x, y) {
		return EmptyCell
	}
	return g.occupancy[g.index(x, y)]
}

// IsOccupied reports true if (x, y) is out-of-grid or carries a non-empty
// id. Out-of-grid positions are defined as occupied so boundary checks
// never need a separate InBounds test.
func (g *Grid) IsOccupied(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.occupancy[g.index(x, y)] != EmptyCell
}

// Set writes id into (x, y) if it is in bounds; out-of-bounds writes are
// silently dropped.
func (g *Grid) Set(x, y, id int) {
	if !g.InBounds(x, y) {
		return
	}
	g.occupancy[g.index(x, y)] = id
}

// clear resets every position to EmptyCell.
func (g *Grid) clear() {
	for i := range g.occupancy {
		g.occupancy[i] = EmptyCell
	}
}

// PaintCell writes cell.ID into every in-bounds position of its footprint.
// Positions outside the grid are silently dropped.
func (g *Grid) PaintCell(c Cell) {
	for dy := 0; dy < c.H; dy++ {
		for dx := 0; dx < c.W; dx++ {
			g.Set(c.X+dx, c.Y+dy, c.ID)
		}
	}
}

// ClearCell overwrites every position currently carrying id with EmptyCell.
// Used by the legalizer to vacate a cell's old footprint before searching
// for a new one, without needing to know the old footprint's exact extent
// (e.g. if it was ever painted partially off-grid).
func (g *Grid) ClearCell(id int) {
	for i, v := range g.occupancy {
		if v == id {
			g.occupancy[i] = EmptyCell
		}
	}
}
