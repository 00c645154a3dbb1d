package model

// Placement owns an ordered sequence of cells, an ordered sequence of nets,
// and the grid derived from cell positions. It is the sole shared mutable
// resource the pipeline stages (anneal, legalize, detail) borrow in turn,
// each running to completion before handing it to the next.
type Placement struct {
	cells   []Cell
	nets    []Net
	grid    *Grid
	idIndex map[int]int // cell id -> index into cells, kept consistent across mutation
}

// NewPlacement constructs an empty Placement over a Width×Height grid. Cells
// and nets are populated afterward via AddCell/AddNet; Refresh must be
// called once population is complete to bring the grid in sync.
func NewPlacement(width, height int) *Placement {
	return &Placement{
		grid:    NewGrid(width, height),
		idIndex: make(map[int]int),
	}
}

// AddCell appends a cell to the placement. Returns ErrDuplicateCellID if a
// cell with the same id already exists.
func (p *Placement) AddCell(c Cell) error {
	if _, exists := p.idIndex[c.ID]; exists {
		return ErrDuplicateCellID
	}
	p.idIndex[c.ID] = len(p.cells)
	p.cells = append(p.cells, c)
	return nil
}

// AddNet appends a net to the placement. Nets are not required to be
// unique by id; the caller (the parser) is responsible for id hygiene.
func (p *Placement) AddNet(n Net) {
	p.nets = append(p.nets, n)
}

// Cells returns the placement's cells in insertion order. The returned
// slice aliases internal storage: callers may mutate element fields other
// than ID (position, via CellByID) but must not change its length.
func (p *Placement) Cells() []Cell { return p.cells }

// Nets returns the placement's nets in insertion order.
func (p *Placement) Nets() []Net { return p.nets }

// Grid returns the placement's occupancy grid.
func (p *Placement) Grid() *Grid { return p.grid }

// CellByID returns a pointer to the cell with the given id for in-place
// mutation of its position, or nil if no such cell exists. Lookup is via
// an id->index map maintained alongside cells, so it is O(1) rather than
// a linear scan; the map must stay consistent across every mutation that
// adds or removes cells.
func (p *Placement) CellByID(id int) *Cell {
	idx, ok := p.idIndex[id]
	if !ok {
		return nil
	}
	return &p.cells[idx]
}

// PinPosition resolves a pin to its absolute (x, y) position. A pin
// referencing an unknown cell id yields (0, 0) rather than an error.
func (p *Placement) PinPosition(pin Pin) (x, y int) {
	c := p.CellByID(pin.CellID)
	if c == nil {
		return 0, 0
	}
	return c.X + pin.OffsetX, c.Y + pin.OffsetY
}

// Refresh recomputes the grid from current cell positions: clears every
// position to EmptyCell, then paints each cell's footprint in insertion
// order (later cells overwrite earlier ones at any position they share,
// last writer wins). Two consecutive calls produce the same grid.
func (p *Placement) Refresh() {
	p.grid.clear()
	for _, c := range p.cells {
		p.grid.PaintCell(c)
	}
}

// MovableCells returns indices (into Cells()) of every non-fixed cell.
func (p *Placement) MovableCells() []int {
	idx := make([]int, 0, len(p.cells))
	for i, c := range p.cells {
		if !c.Fixed {
			idx = append(idx, i)
		}
	}
	return idx
}
