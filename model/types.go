package model

// EmptyCell is the sentinel grid value meaning "no cell covers this
// position". Cell ids are expected to be non-negative, so -1 can never
// collide with a real id.
const EmptyCell = -1

// Cell is an axis-aligned rectangular module. Position (X, Y) is its
// lower-left corner; (W, H) are its positive dimensions. A Fixed cell's
// position must never be changed by anneal, legalize, or detail — only
// construction (via AddCell) may set it.
type Cell struct {
	ID    int
	X, Y  int
	W, H  int
	Fixed bool
}

// Right returns the exclusive upper bound on x covered by the cell (X+W).
func (c Cell) Right() int { return c.X + c.W }

// Top returns the exclusive upper bound on y covered by the cell (Y+H).
func (c Cell) Top() int { return c.Y + c.H }

// InBounds reports whether the cell's full footprint lies within a grid of
// the given dimensions.
func (c Cell) InBounds(width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.Right() <= width && c.Top() <= height
}

// Overlaps reports whether c and other's rectangles intersect (share any
// positive area).
func (c Cell) Overlaps(other Cell) bool {
	return c.X < other.Right() && other.X < c.Right() &&
		c.Y < other.Top() && other.Y < c.Top()
}

// OverlapArea returns the area of intersection between c and other's
// rectangles, or 0 if they are disjoint.
func (c Cell) OverlapArea(other Cell) int {
	dx := min(c.Right(), other.Right()) - max(c.X, other.X)
	dy := min(c.Top(), other.Top()) - max(c.Y, other.Y)
	if dx <= 0 || dy <= 0 {
		return 0
	}
	return dx * dy
}

// Pin references a cell by id and an offset from that cell's lower-left
// corner. A pin referring to an unknown cell id contributes position (0,0)
// to HPWL computations — a defined fallback, not an error.
type Pin struct {
	CellID         int
	OffsetX, OffsetY int
}

// Net is an identified, ordered sequence of pins to be wired together. An
// empty net contributes zero wirelength.
type Net struct {
	ID   int
	Pins []Pin
}
