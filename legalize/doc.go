// Package legalize implements the placement engine's legalization stage: it
// projects a possibly-overlapping placement (the annealer's output) onto
// the manifold of overlap-free, in-bounds placements, perturbing positions
// as little as possible.
//
// What:
//
//   - Cells are legalized largest-area-first, so the cells hardest to
//     place later are given first pick of free ground.
//   - Each cell's replacement position is found by a spiral perimeter scan
//     centered on its current position (adapted from gridgraph's 0-1 BFS
//     ring expansion, but over Chebyshev rings rather than graph distance).
//
// Why:
//
//   - A greedy, order-sensitive placement avoids the cost of a full
//     matching/flow solve while still converging in practice.
//
// Failure mode:
//
//   - If no free position exists within the maximum search radius, the
//     cell is left exactly where it was and a warning is logged; the
//     pipeline continues rather than failing the whole run.
package legalize
