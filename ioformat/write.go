package ioformat

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/tim5451003/placement/model"
)

// gridJSON, cellJSON, netJSON, pinJSON mirror the output object's keys
// exactly: a top-level object with "grid", "cells", and "nets"; field
// order here only affects encoding order, not semantics.
type gridJSON struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type cellJSON struct {
	ID    int  `json:"id"`
	X     int  `json:"x"`
	Y     int  `json:"y"`
	W     int  `json:"w"`
	H     int  `json:"h"`
	Fixed bool `json:"fixed"`
}

type pinJSON struct {
	CellID  int `json:"cell_id"`
	OffsetX int `json:"offset_x"`
	OffsetY int `json:"offset_y"`
}

type netJSON struct {
	ID   int       `json:"id"`
	Pins []pinJSON `json:"pins"`
}

type placementJSON struct {
	Grid  gridJSON   `json:"grid"`
	Cells []cellJSON `json:"cells"`
	Nets  []netJSON  `json:"nets"`
}

// Write marshals p into the documented JSON object shape and writes it to w.
func Write(w io.Writer, p *model.Placement) error {
	doc := toJSON(p)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadJSON parses the object shape Write produces back into a Placement.
// It is distinct from Parse, which reads the plain-text input format.
func ReadJSON(r io.Reader) (*model.Placement, error) {
	var doc placementJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	p := model.NewPlacement(doc.Grid.Width, doc.Grid.Height)
	for _, c := range doc.Cells {
		if err := p.AddCell(model.Cell{
			ID: c.ID, X: c.X, Y: c.Y, W: c.W, H: c.H, Fixed: c.Fixed,
		}); err != nil {
			return nil, err
		}
	}
	for _, n := range doc.Nets {
		pins := make([]model.Pin, len(n.Pins))
		for i, pin := range n.Pins {
			pins[i] = model.Pin{CellID: pin.CellID, OffsetX: pin.OffsetX, OffsetY: pin.OffsetY}
		}
		p.AddNet(model.Net{ID: n.ID, Pins: pins})
	}
	p.Refresh()
	return p, nil
}

func toJSON(p *model.Placement) placementJSON {
	grid := p.Grid()
	cells := p.Cells()
	nets := p.Nets()

	doc := placementJSON{
		Grid:  gridJSON{Width: grid.Width, Height: grid.Height},
		Cells: make([]cellJSON, len(cells)),
		Nets:  make([]netJSON, len(nets)),
	}
	for i, c := range cells {
		doc.Cells[i] = cellJSON{ID: c.ID, X: c.X, Y: c.Y, W: c.W, H: c.H, Fixed: c.Fixed}
	}
	for i, n := range nets {
		pins := make([]pinJSON, len(n.Pins))
		for j, pin := range n.Pins {
			pins[j] = pinJSON{CellID: pin.CellID, OffsetX: pin.OffsetX, OffsetY: pin.OffsetY}
		}
		doc.Nets[i] = netJSON{ID: n.ID, Pins: pins}
	}
	return doc
}
