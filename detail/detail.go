package detail

import (
	"context"
	"math/rand"

	"github.com/tim5451003/placement/cost"
	"github.com/tim5451003/placement/model"
)

// DetailPlacer runs windowed local-search refinement over a Placement.
type DetailPlacer struct {
	cfg Config
	rng *rand.Rand
}

// New constructs a DetailPlacer with the given configuration and RNG seed.
// A fixed seed makes a run reproducible, mirroring anneal.New's contract.
func New(cfg Config, seed int64) *DetailPlacer {
	return &DetailPlacer{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Run performs up to cfg.MaxIterations full window sweeps over p, greedily
// accepting local perturbations that strictly reduce cost. It terminates
// early once a sweep's ending cost is at least 0.999x the previous sweep's
// ending cost.
func (d *DetailPlacer) Run(ctx context.Context, p *model.Placement) Result {
	windowSize := d.cfg.resolvedWindowSize()
	radius := windowSize / 2
	maxIterations := d.cfg.resolvedMaxIterations()

	prevCost := cost.Evaluate(p, d.cfg.Weights)
	sweeps := 0
	converged := false

	for sweep := 1; sweep <= maxIterations; sweep++ {
		if err := ctx.Err(); err != nil {
			break
		}
		d.sweep(p, windowSize, radius)
		sweeps = sweep

		currentCost := cost.Evaluate(p, d.cfg.Weights)
		if currentCost >= 0.999*prevCost {
			prevCost = currentCost
			converged = true
			break
		}
		prevCost = currentCost
	}

	d.cfg.Logger.Info().
		Int("sweeps", sweeps).
		Float64("final_cost", prevCost).
		Bool("converged", converged).
		Msg("detail: run complete")

	return Result{Sweeps: sweeps, FinalCost: prevCost, Converged: converged}
}

// sweep performs one full row-major pass over the grid's windows.
func (d *DetailPlacer) sweep(p *model.Placement, windowSize, radius int) {
	grid := p.Grid()
	nWindowsX := ceilDiv(grid.Width, windowSize)
	nWindowsY := ceilDiv(grid.Height, windowSize)

	for wy := 0; wy < nWindowsY; wy++ {
		for wx := 0; wx < nWindowsX; wx++ {
			cx := (float64(wx) + 0.5) * float64(windowSize)
			cy := (float64(wy) + 0.5) * float64(windowSize)
			for _, idx := range cellsInWindow(p, cx, cy, windowSize) {
				d.perturb(p, idx, radius)
			}
		}
	}
}

// cellsInWindow returns indices (into p.Cells()) of every non-fixed cell
// whose center lies within Chebyshev distance windowSize of (cx, cy).
func cellsInWindow(p *model.Placement, cx, cy float64, windowSize int) []int {
	cells := p.Cells()
	var idx []int
	for i, c := range cells {
		if c.Fixed {
			continue
		}
		centerX := float64(c.X) + float64(c.W)/2
		centerY := float64(c.Y) + float64(c.H)/2
		if chebyshev(centerX-cx, centerY-cy) <= float64(windowSize) {
			idx = append(idx, i)
		}
	}
	return idx
}

// perturb attempts one local move of the cell at cells[idx]: a uniform
// random offset in [-radius, radius] on each axis, clamped in bounds,
// rejected if it would collide with a different cell's footprint,
// otherwise accepted only if it strictly reduces total cost.
func (d *DetailPlacer) perturb(p *model.Placement, idx int, radius int) {
	cells := p.Cells()
	c := &cells[idx]
	grid := p.Grid()

	before := cost.Evaluate(p, d.cfg.Weights)
	original := *c

	dx := d.offset(radius)
	dy := d.offset(radius)
	newX := clamp(c.X+dx, 0, grid.Width-c.W)
	newY := clamp(c.Y+dy, 0, grid.Height-c.H)

	if collidesWithOther(grid, model.Cell{ID: c.ID, X: newX, Y: newY, W: c.W, H: c.H}) {
		return
	}

	c.X, c.Y = newX, newY
	p.Refresh()

	after := cost.Evaluate(p, d.cfg.Weights)
	if after < before {
		return
	}

	*c = original
	p.Refresh()
}

// collidesWithOther reports whether candidate's footprint covers any
// in-bounds grid position occupied by a different cell. The grid is only
// advisory while cells may still overlap; here it is exact, since detail
// placement only runs on an already-legalized grid.
func collidesWithOther(grid *model.Grid, candidate model.Cell) bool {
	if !candidate.InBounds(grid.Width, grid.Height) {
		return true
	}
	for dy := 0; dy < candidate.H; dy++ {
		for dx := 0; dx < candidate.W; dx++ {
			occ := grid.At(candidate.X+dx, candidate.Y+dy)
			if occ != model.EmptyCell && occ != candidate.ID {
				return true
			}
		}
	}
	return false
}

func (d *DetailPlacer) offset(radius int) int {
	if radius <= 0 {
		return 0
	}
	return d.rng.Intn(2*radius+1) - radius
}

func chebyshev(dx, dy float64) float64 {
	return max(abs(dx), abs(dy))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
