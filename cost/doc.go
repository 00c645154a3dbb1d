// Package cost implements the placement engine's objective function: total
// half-perimeter wirelength (HPWL), pairwise overlap area, and binned
// density variance, combined into a single weighted scalar.
//
// All functions here are pure: they read a *model.Placement snapshot and
// never mutate it. This lets anneal, legalize, and detail all share the
// exact same cost definition without any of them owning it.
//
// Complexity:
//
//   - HPWLTotal:  O(P) where P is the total pin count across all nets.
//   - Overlap:    O(n²) in the cell count — acceptable at this design's
//     target scale; an incremental/delta formulation is a possible future
//     optimization, not implemented here.
//   - Density:    O(n + 100) — one pass over cells to bin them, then a
//     fixed-size variance over the 100 bins.
//   - Evaluate:   sum of the above.
package cost
