package detail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tim5451003/placement/cost"
	"github.com/tim5451003/placement/model"
)

func legalizedPlacement(t *testing.T) *model.Placement {
	t.Helper()
	p := model.NewPlacement(20, 20)
	require.NoError(t, p.AddCell(model.Cell{ID: 1, X: 0, Y: 0, W: 2, H: 2}))
	require.NoError(t, p.AddCell(model.Cell{ID: 2, X: 5, Y: 5, W: 2, H: 2}))
	require.NoError(t, p.AddCell(model.Cell{ID: 3, X: 10, Y: 10, W: 3, H: 3}))
	p.AddNet(model.Net{ID: 1, Pins: []model.Pin{{CellID: 1}, {CellID: 2}, {CellID: 3}}})
	p.Refresh()
	return p
}

func TestRun_MonotonicallyNonIncreasesCost(t *testing.T) {
	p := legalizedPlacement(t)
	weights := cost.DefaultWeights()
	before := cost.Evaluate(p, weights)

	d := New(Config{Weights: weights}, 42)
	res := d.Run(context.Background(), p)

	require.LessOrEqual(t, res.FinalCost, before)
	require.LessOrEqual(t, cost.Evaluate(p, weights), before)
}

func TestRun_FixedCellsImmobile(t *testing.T) {
	p := model.NewPlacement(10, 10)
	require.NoError(t, p.AddCell(model.Cell{ID: 1, X: 3, Y: 3, W: 2, H: 2, Fixed: true}))
	require.NoError(t, p.AddCell(model.Cell{ID: 2, X: 0, Y: 0, W: 2, H: 2}))
	p.Refresh()

	d := New(DefaultConfig(), 7)
	d.Run(context.Background(), p)

	c := p.CellByID(1)
	require.Equal(t, 3, c.X)
	require.Equal(t, 3, c.Y)
}

func TestRun_NoCollisionsIntroduced(t *testing.T) {
	p := legalizedPlacement(t)
	d := New(DefaultConfig(), 99)
	d.Run(context.Background(), p)

	cells := p.Cells()
	for i := 0; i < len(cells); i++ {
		require.True(t, cells[i].InBounds(20, 20))
		for j := i + 1; j < len(cells); j++ {
			require.False(t, cells[i].Overlaps(cells[j]))
		}
	}
}

func TestRun_RespectsContextCancellation(t *testing.T) {
	p := legalizedPlacement(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(DefaultConfig(), 1)
	res := d.Run(ctx, p)
	require.Equal(t, 0, res.Sweeps)
}

func TestCeilDiv_LastWindowSmaller(t *testing.T) {
	require.Equal(t, 3, ceilDiv(13, 5)) // windows: [0,5) [5,10) [10,13)
	require.Equal(t, 2, ceilDiv(10, 5))
	require.Equal(t, 0, ceilDiv(10, 0))
}

func TestChebyshev(t *testing.T) {
	require.Equal(t, 3.0, chebyshev(3, -1))
	require.Equal(t, 0.0, chebyshev(0, 0))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0, clamp(-5, 0, 10))
	require.Equal(t, 10, clamp(15, 0, 10))
	require.Equal(t, 5, clamp(5, 0, 10))
	require.Equal(t, 0, clamp(5, 0, -1)) // degenerate hi<lo clamps to lo
}
