package model_test

import (
	"fmt"

	"github.com/tim5451003/placement/model"
)

// ExamplePlacement demonstrates constructing a placement, querying a pin's
// absolute position, and refreshing the grid after moving a cell.
func ExamplePlacement() {
	p := model.NewPlacement(10, 10)
	_ = p.AddCell(model.Cell{ID: 0, X: 0, Y: 0, W: 2, H: 2})
	p.AddNet(model.Net{ID: 0, Pins: []model.Pin{{CellID: 0, OffsetX: 1, OffsetY: 1}}})
	p.Refresh()

	x, y := p.PinPosition(p.Nets()[0].Pins[0])
	fmt.Println("pin at:", x, y)

	c := p.CellByID(0)
	c.X, c.Y = 5, 5
	p.Refresh()
	fmt.Println("grid at (5,5):", p.Grid().At(5, 5))
	fmt.Println("grid at (0,0):", p.Grid().At(0, 0))
	// Output:
	// pin at: 1 1
	// grid at (5,5): 0
	// grid at (0,0): -1
}
