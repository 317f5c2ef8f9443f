// Package tsp orders a handful of campus stops into the cheapest visit
// sequence, the travelling-salesman problem on a distance matrix.
//
// Input is a *matrix.Dense of shortest walking distances between the stops
// (see matrix.Table.Sub), so every entry is already a metric closure and Inf
// only appears for stops in different components.
//
//   - Exact: Held–Karp dynamic programming. Optimal.
//     Time O(n²·2ⁿ), memory O(n·2ⁿ). Used up to Options.MaxExact stops.
//   - NearestNeighbor + TwoOpt: greedy construction then first-improvement
//     2-opt. Deterministic; no randomness.
//
// Tours start at stop 0. Open tours (the default) end wherever is cheapest;
// WithClosed returns to stop 0.
package tsp
