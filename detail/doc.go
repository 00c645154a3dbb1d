// Package detail implements the placement engine's detail placement stage:
// a seeded, windowed local search that recovers HPWL lost to
// legalization's greedy repositioning.
//
// The grid is swept in windows of window_size × window_size, row-major.
// Each window gathers the non-fixed cells whose center lies within
// Chebyshev distance window_size of the window's center (a square twice
// the window's side, so neighbouring windows share cells) and gives each
// one local perturbation attempt, accepting only strict cost
// improvements (adapted from the same accept/revert idiom anneal.Run uses,
// scaled down to a single proposal per cell per sweep rather than a cooling
// schedule).
//
// The outer loop compares each sweep's ending cost against the *previous*
// sweep's ending cost, not the cost on entry to Run; this is a deliberate
// choice, not an oversight, since comparing only against the entry cost
// would let one early improvement satisfy the termination check for the
// rest of the run.
package detail
