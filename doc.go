// Package placement implements a VLSI-style cell placement engine: given a
// rectangular grid, a set of axis-aligned cells (some fixed), and a set of
// multi-terminal nets, it produces a legal (overlap-free, in-bounds)
// assignment of positions to movable cells minimizing a cost dominated by
// half-perimeter wirelength, with auxiliary overlap and density penalties.
//
// The pipeline runs in three stages, in fixed order:
//
//	anneal    — stochastic global placer (simulated annealing, soft overlap)
//	legalize  — greedy conflict-free reassignment via spiral search
//	detail    — windowed local hill-climbing to recover lost wirelength
//
// Subpackages:
//
//	model/     — cells, pins, nets, grid occupancy, the Placement container
//	cost/      — HPWL, overlap, and density penalty evaluation
//	anneal/    — the stochastic global placer
//	legalize/  — the legalizer
//	detail/    — the detail placer
//	ioformat/  — text input parsing and JSON result emission
//	config/    — YAML-loadable pipeline configuration
//	cmd/placement/ — the command-line driver
package placement
