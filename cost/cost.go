package cost

import (
	"gonum.org/v1/gonum/stat"

	"github.com/tim5451003/placement/model"
)

// densityBins is the fixed number of bins per axis the grid is partitioned
// into for the density penalty. It is a constant of the cost model, not a
// tunable.
const densityBins = 10

// Weights scales the overlap and density penalties relative to HPWL in the
// total cost.
type Weights struct {
	Overlap float64
	Density float64
}

// DefaultWeights returns the weights used when none are specified:
// λ_overlap = 1.0, λ_density = 0.1.
func DefaultWeights() Weights {
	return Weights{Overlap: 1.0, Density: 0.1}
}

// HPWLNet computes the half-perimeter wirelength of a single net: the sum
// of the x-span and y-span of its pins' absolute bounding box. An empty net
// contributes 0.
func HPWLNet(p *model.Placement, n model.Net) int {
	if len(n.Pins) == 0 {
		return 0
	}
	minX, maxX := 0, 0
	minY, maxY := 0, 0
	for i, pin := range n.Pins {
		x, y := p.PinPosition(pin)
		if i == 0 {
			minX, maxX = x, x
			minY, maxY = y, y
			continue
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return (maxX - minX) + (maxY - minY)
}

// HPWLTotal sums HPWLNet across every net in the placement.
func HPWLTotal(p *model.Placement) int {
	total := 0
	for _, n := range p.Nets() {
		total += HPWLNet(p, n)
	}
	return total
}

// Overlap sums, over every unordered pair of distinct cells, the area of
// intersection of their rectangles (0 if disjoint). O(n²) in the cell
// count.
func Overlap(p *model.Placement) int {
	cells := p.Cells()
	total := 0
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			total += cells[i].OverlapArea(cells[j])
		}
	}
	return total
}

// Density returns the population variance of the 100 bins a 10×10
// partition of the grid is divided into, each accumulating the full area
// of every cell whose lower-left corner falls inside it (no splitting a
// cell's area across the bins it spans). Returns 0 when the grid has zero
// width or height.
func Density(p *model.Placement) float64 {
	grid := p.Grid()
	if grid.Width == 0 || grid.Height == 0 {
		return 0
	}

	binW := grid.Width / densityBins
	binH := grid.Height / densityBins

	var bins [densityBins * densityBins]float64
	for _, c := range p.Cells() {
		bx := binIndex(c.X, binW)
		by := binIndex(c.Y, binH)
		bins[by*densityBins+bx] += float64(c.W * c.H)
	}

	_, variance := stat.PopMeanVariance(bins[:], nil)
	return variance
}

// binIndex maps a single coordinate to its bin index along one axis,
// clamping to the last bin when binSize is 0 (grid smaller than 10 along
// that axis) or the coordinate falls past the coarse range.
func binIndex(coord, binSize int) int {
	if binSize <= 0 {
		return densityBins - 1
	}
	idx := coord / binSize
	if idx >= densityBins {
		idx = densityBins - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Evaluate returns the placement's total cost: HPWL + λ_overlap·overlap +
// λ_density·density.
func Evaluate(p *model.Placement, w Weights) float64 {
	return float64(HPWLTotal(p)) + w.Overlap*float64(Overlap(p)) + w.Density*Density(p)
}
