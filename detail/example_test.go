package detail_test

import (
	"context"
	"fmt"

	"github.com/tim5451003/placement/cost"
	"github.com/tim5451003/placement/detail"
	"github.com/tim5451003/placement/model"
)

// ExampleDetailPlacer_Run demonstrates that a detail placement run never
// increases total cost.
func ExampleDetailPlacer_Run() {
	p := model.NewPlacement(20, 20)
	_ = p.AddCell(model.Cell{ID: 0, X: 0, Y: 0, W: 2, H: 2})
	_ = p.AddCell(model.Cell{ID: 1, X: 10, Y: 10, W: 2, H: 2})
	p.AddNet(model.Net{ID: 0, Pins: []model.Pin{{CellID: 0}, {CellID: 1}}})
	p.Refresh()

	weights := cost.DefaultWeights()
	before := cost.Evaluate(p, weights)

	d := detail.New(detail.Config{Weights: weights}, 3)
	result := d.Run(context.Background(), p)

	fmt.Println("improved or equal:", result.FinalCost <= before)
	// Output:
	// improved or equal: true
}
