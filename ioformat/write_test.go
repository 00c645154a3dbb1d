package ioformat_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tim5451003/placement/ioformat"
	"github.com/tim5451003/placement/model"
)

func buildPlacement(t *testing.T) *model.Placement {
	t.Helper()
	p := model.NewPlacement(10, 10)
	require.NoError(t, p.AddCell(model.Cell{ID: 0, X: 0, Y: 0, W: 2, H: 2}))
	require.NoError(t, p.AddCell(model.Cell{ID: 1, X: 8, Y: 8, W: 2, H: 2, Fixed: true}))
	p.AddNet(model.Net{ID: 0, Pins: []model.Pin{{CellID: 0}, {CellID: 1}}})
	p.Refresh()
	return p
}

func TestJSONRoundTrip(t *testing.T) {
	original := buildPlacement(t)

	var buf bytes.Buffer
	require.NoError(t, ioformat.Write(&buf, original))

	roundTripped, err := ioformat.ReadJSON(&buf)
	require.NoError(t, err)

	require.Equal(t, original.Grid().Width, roundTripped.Grid().Width)
	require.Equal(t, original.Grid().Height, roundTripped.Grid().Height)
	require.Equal(t, original.Cells(), roundTripped.Cells())
	require.Equal(t, original.Nets(), roundTripped.Nets())
}

// ExampleWrite demonstrates the JSON object shape Write produces.
func ExampleWrite() {
	p := model.NewPlacement(4, 4)
	_ = p.AddCell(model.Cell{ID: 0, X: 0, Y: 0, W: 2, H: 2})
	p.AddNet(model.Net{ID: 0, Pins: []model.Pin{{CellID: 0, OffsetX: 1, OffsetY: 1}}})
	p.Refresh()

	var buf bytes.Buffer
	_ = ioformat.Write(&buf, p)
	fmt.Print(buf.String())
	// Output:
	// {
	//   "grid": {
	//     "width": 4,
	//     "height": 4
	//   },
	//   "cells": [
	//     {
	//       "id": 0,
	//       "x": 0,
	//       "y": 0,
	//       "w": 2,
	//       "h": 2,
	//       "fixed": false
	//     }
	//   ],
	//   "nets": [
	//     {
	//       "id": 0,
	//       "pins": [
	//         {
	//           "cell_id": 0,
	//           "offset_x": 1,
	//           "offset_y": 1
	//         }
	//       ]
	//     }
	//   ]
	// }
}
