package anneal

import (
	"context"
	"math"
	"math/rand"

	"github.com/tim5451003/placement/cost"
	"github.com/tim5451003/placement/model"
)

// Annealer runs simulated annealing over a *model.Placement. All randomness
// flows through rng; construct with New(cfg, seed) for a reproducible run.
type Annealer struct {
	cfg Config
	rng *rand.Rand
}

// New constructs an Annealer with the given configuration and seed. Seed 0
// is as valid and reproducible as any other. Nondeterministic seeding, when
// desired, is the caller's responsibility (e.g. seed from time.Now()).
func New(cfg Config, seed int64) *Annealer {
	return &Annealer{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// RandomInit scatters every non-fixed cell uniformly within the grid's
// bounds, leaves fixed cells untouched, and refreshes the grid.
func (a *Annealer) RandomInit(p *model.Placement) {
	grid := p.Grid()
	cells := p.Cells()
	for i := range cells {
		c := &cells[i]
		if c.Fixed {
			continue
		}
		c.X = a.rng.Intn(boundedSpan(grid.Width, c.W))
		c.Y = a.rng.Intn(boundedSpan(grid.Height, c.H))
	}
	p.Refresh()
}

// boundedSpan returns max(1, dim-size+1), the number of distinct in-bounds
// origins along one axis, so that rng.Intn never sees a non-positive
// argument when the cell exactly fills or exceeds the grid along that
// axis.
func boundedSpan(dim, size int) int {
	span := dim - size + 1
	if span < 1 {
		return 1
	}
	return span
}

// Run anneals p in place for up to cfg.MaxEpochs epochs, or until a stall
// is declared, and leaves the grid consistent with final cell positions.
// It does not call RandomInit; callers that want a random starting point
// must call it first.
func (a *Annealer) Run(ctx context.Context, p *model.Placement) Result {
	movable := p.MovableCells()
	cells := p.Cells()
	grid := p.Grid()

	temperature := a.cfg.T0
	currentCost := cost.Evaluate(p, a.cfg.Weights)
	movesPerEpoch := a.cfg.resolvedMovesPerEpoch(len(cells))
	window := a.cfg.resolvedWindow()

	var history []float64
	epoch := 0
	stalled := false

	for ; epoch < a.cfg.MaxEpochs; epoch++ {
		if err := ctx.Err(); err != nil {
			break
		}
		for m := 0; m < movesPerEpoch; m++ {
			currentCost = a.attemptMove(p, cells, grid, movable, currentCost, temperature)
		}
		temperature *= a.cfg.Alpha
		history = append(history, currentCost)

		if stalled = detectStall(history, window); stalled {
			a.cfg.Logger.Info().Int("epoch", epoch+1).Float64("cost", currentCost).Msg("anneal: stall detected")
			epoch++
			break
		}
	}

	p.Refresh()
	a.cfg.Logger.Info().Int("epochs", epoch).Float64("cost", currentCost).Bool("stalled", stalled).Msg("anneal: finished")

	return Result{Epochs: epoch, FinalCost: currentCost, Stalled: stalled}
}

// attemptMove proposes one SHIFT or SWAP move, evaluates it under the SA
// acceptance law, and returns the resulting current cost (unchanged if the
// move was a no-op or was rejected).
//
// Cost evaluation here never touches the grid: HPWLTotal reads pin
// positions, Overlap reads cell rectangles, and Density reads only grid
// dimensions plus cell positions. The grid is merely advisory during
// annealing, since cells may legally overlap until legalization — so
// moves are proposed and priced without a grid refresh per move; Run
// refreshes the grid once, at the end.
func (a *Annealer) attemptMove(p *model.Placement, cells []model.Cell, grid *model.Grid, movable []int, before float64, temperature float64) float64 {
	if len(movable) == 0 {
		return before // no movable cell exists; both SHIFT and SWAP are no-ops
	}

	if a.rng.Float64() < shiftProbability {
		return a.attemptShift(p, cells, grid, movable, before, temperature)
	}
	return a.attemptSwap(p, cells, movable, before, temperature)
}

func (a *Annealer) attemptShift(p *model.Placement, cells []model.Cell, grid *model.Grid, movable []int, before float64, temperature float64) float64 {
	idx := movable[a.rng.Intn(len(movable))]
	c := &cells[idx]

	oldX, oldY := c.X, c.Y
	c.X = a.rng.Intn(boundedSpan(grid.Width, c.W))
	c.Y = a.rng.Intn(boundedSpan(grid.Height, c.H))

	after := cost.Evaluate(p, a.cfg.Weights)
	if a.accept(before, after, temperature) {
		return after
	}
	c.X, c.Y = oldX, oldY
	return before
}

func (a *Annealer) attemptSwap(p *model.Placement, cells []model.Cell, movable []int, before float64, temperature float64) float64 {
	if len(movable) < 2 {
		return before // fewer than two movable cells exist; SWAP is a no-op
	}
	i := movable[a.rng.Intn(len(movable))]
	j := movable[a.rng.Intn(len(movable))]
	for j == i {
		j = movable[a.rng.Intn(len(movable))]
	}

	c1, c2 := &cells[i], &cells[j]
	c1.X, c2.X = c2.X, c1.X
	c1.Y, c2.Y = c2.Y, c1.Y

	grid := p.Grid()
	if !c1.InBounds(grid.Width, grid.Height) || !c2.InBounds(grid.Width, grid.Height) {
		// Re-validate after swapping, since cells of different sizes can
		// carry one another out of bounds. Reject as a no-op without even
		// pricing the move.
		c1.X, c2.X = c2.X, c1.X
		c1.Y, c2.Y = c2.Y, c1.Y
		return before
	}

	after := cost.Evaluate(p, a.cfg.Weights)
	if a.accept(before, after, temperature) {
		return after
	}
	c1.X, c2.X = c2.X, c1.X
	c1.Y, c2.Y = c2.Y, c1.Y
	return before
}

// accept implements the SA acceptance law: downhill moves (delta <= 0) are
// always accepted; uphill moves are accepted with probability
// exp(-delta/temperature).
func (a *Annealer) accept(before, after, temperature float64) bool {
	delta := after - before
	if delta <= 0 {
		return true
	}
	return a.rng.Float64() < math.Exp(-delta/temperature)
}

// detectStall reports whether the mean of the last `window` samples has
// improved on the mean of the `window` samples preceding those by less
// than 1% relative to the older mean. Returns false until at least
// 2*window samples are available. A zero older-mean (the cost has already
// bottomed out at exactly 0) is treated as converged to avoid a division
// by zero.
func detectStall(history []float64, window int) bool {
	if len(history) < 2*window {
		return false
	}
	recent := history[len(history)-window:]
	older := history[len(history)-2*window : len(history)-window]

	recentMean := mean(recent)
	olderMean := mean(older)
	if olderMean == 0 {
		return true
	}
	return (olderMean-recentMean)/olderMean < 0.01
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
