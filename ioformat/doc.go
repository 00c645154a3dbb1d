// Package ioformat implements the placement engine's text input parser and
// JSON result emitter. These are deliberately thin: the core optimizer
// packages (model, cost, anneal, legalize, detail) never import ioformat,
// and ioformat never inspects grid occupancy — it only reads and writes
// cell/net/grid records.
//
// Input format:
//
//	<W> <H>
//	<num_cells>
//	<id> <x> <y> <w> <h> [fixed]          x num_cells
//	<num_nets>
//	<net_id> <num_pins> [<cell_id> <off_x> <off_y>]x num_pins   x num_nets
//
// A malformed record is skipped rather than aborting the parse: per-record
// parse errors are recovered locally, not surfaced.
package ioformat
