// Package anneal implements the placement engine's stochastic global
// placement stage: simulated annealing over SHIFT and SWAP moves under the
// cost package's soft-constraint cost model (overlaps are penalized, not
// forbidden).
//
// What:
//
//   - RandomInit scatters every non-fixed cell uniformly within bounds.
//   - Run repeatedly proposes a move, accepts or rejects it per the SA
//     acceptance law, cools the temperature after each epoch, and stops on
//     max_epochs or stall.
//
// Why:
//
//   - A soft-constraint stochastic search explores configurations a
//     strictly-legal search would never reach, at the cost of needing a
//     separate legalization pass (the legalize package) afterward.
//
// Determinism:
//
//   - Every source of randomness flows through the *rand.Rand passed to
//     New; the same seed reproduces the same run bit-for-bit. Seed
//     plumbing is part of the public contract, not an implementation
//     detail callers can ignore.
package anneal
