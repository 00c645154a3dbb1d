package anneal_test

import (
	"context"
	"fmt"

	"github.com/tim5451003/placement/anneal"
	"github.com/tim5451003/placement/model"
)

// ExampleAnnealer_Run demonstrates a minimal annealing run over a single
// fixed cell: since nothing can move, the run stalls immediately and the
// cost never changes.
func ExampleAnnealer_Run() {
	p := model.NewPlacement(5, 5)
	_ = p.AddCell(model.Cell{ID: 0, X: 0, Y: 0, W: 1, H: 1, Fixed: true})
	p.Refresh()

	a := anneal.New(anneal.DefaultConfig(), 1)
	result := a.Run(context.Background(), p)
	fmt.Println("stalled:", result.Stalled)
	// Output:
	// stalled: true
}
