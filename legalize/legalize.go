package legalize

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tim5451003/placement/model"
)

// Config configures a legalization run.
type Config struct {
	// Logger receives a warning event per cell that could not be
	// legalized. The zero value is zerolog's no-op logger.
	Logger zerolog.Logger
}

// Result reports how many cells the run could not find a legal position
// for; such cells are left exactly where they were.
type Result struct {
	Unresolved int
}

// Run legalizes p in place: every non-fixed cell is repositioned, largest
// area first, to the nearest (by Chebyshev spiral) free position, and the
// grid is left consistent with the result.
//
// Every movable cell's footprint is cleared from the grid before the
// placement loop starts, rather than one cell at a time as each is
// visited. The grid's occupancy is last-writer-wins: a position covered by
// more than one cell's footprint remembers only the most recently painted
// id. If an unprocessed cell's footprint were still on the grid when an
// earlier cell in the order is searched, that earlier cell could find its
// own, still-unmoved position reported as occupied by a cell that hasn't
// been placed yet. Clearing every movable cell up front means the grid,
// at the moment any cell is searched, reflects exactly the fixed cells
// plus the cells already placed earlier in this run — never a stale or
// not-yet-decided footprint.
func Run(ctx context.Context, p *model.Placement, cfg Config) Result {
	cells := p.Cells()
	order := movableIndicesByAreaDesc(cells)

	p.Refresh()
	grid := p.Grid()

	for _, idx := range order {
		grid.ClearCell(cells[idx].ID)
	}

	unresolved := 0
	for k, idx := range order {
		if err := ctx.Err(); err != nil {
			// Repaint the cells not reached, at their unchanged positions,
			// so the grid still matches every cell's footprint.
			for _, rest := range order[k:] {
				grid.PaintCell(cells[rest])
			}
			break
		}
		c := &cells[idx]

		x, y, found := findFreePosition(grid, *c)
		if !found {
			cfg.Logger.Warn().
				Int("cell_id", c.ID).
				Int("x", c.X).Int("y", c.Y).
				Int("grid_width", grid.Width).Int("grid_height", grid.Height).
				Msg("legalize: no free position found; leaving cell in place")
			unresolved++
		} else {
			c.X, c.Y = x, y
		}
		grid.PaintCell(*c)
	}

	return Result{Unresolved: unresolved}
}

// movableIndicesByAreaDesc returns indices (into cells) of every non-fixed
// cell, sorted by area descending with ties broken by original order
// (stable sort).
func movableIndicesByAreaDesc(cells []model.Cell) []int {
	idx := make([]int, 0, len(cells))
	for i, c := range cells {
		if !c.Fixed {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ca, cb := cells[idx[a]], cells[idx[b]]
		return ca.W*ca.H > cb.W*cb.H
	})
	return idx
}

// findFreePosition performs a spiral perimeter scan centered on c's current
// position: the current position first, then Chebyshev rings of increasing
// radius up to max(W,H)-1, each ring enumerated dy-outer/dx-inner ascending.
// A position is acceptable iff c's full footprint at that position is
// in-bounds and every covered grid position is either empty or already
// carries c's own id. Within Run the own-id case never arises, since every
// movable cell's footprint has already been cleared from the grid before
// the search loop begins.
func findFreePosition(grid *model.Grid, c model.Cell) (x, y int, found bool) {
	if fits(grid, c, c.X, c.Y) {
		return c.X, c.Y, true
	}

	maxRadius := grid.Width
	if grid.Height > maxRadius {
		maxRadius = grid.Height
	}
	maxRadius--

	for r := 1; r <= maxRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				cand := c.X + dx
				candY := c.Y + dy
				if fits(grid, c, cand, candY) {
					return cand, candY, true
				}
			}
		}
	}
	return c.X, c.Y, false
}

// fits reports whether c, if placed at (x, y), would lie fully in-bounds
// and cover only empty positions or positions already carrying c's own id.
func fits(grid *model.Grid, c model.Cell, x, y int) bool {
	candidate := c
	candidate.X, candidate.Y = x, y
	if !candidate.InBounds(grid.Width, grid.Height) {
		return false
	}
	for dy := 0; dy < candidate.H; dy++ {
		for dx := 0; dx < candidate.W; dx++ {
			occ := grid.At(x+dx, y+dy)
			if occ != model.EmptyCell && occ != c.ID {
				return false
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
