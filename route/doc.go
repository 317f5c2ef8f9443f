// Package route turns a bare core.Path into something a person can follow.
//
// Present walks consecutive node pairs, looks each pair up in the graph's
// detail table and emits one Step per leg with both display names, the leg
// distance and the leg walking time. Totals:
//
//   - TotalDistance is the path's own weight (known from the search).
//   - TotalTime is the sum of the leg times.
//   - StepCount is nodes − 1.
//
// Lookups degrade instead of failing: a pair without a detail entry counts as
// {0, 0} and an unknown ID renders as "Unknown". Consistent reports whether the
// per-leg distances add up to TotalDistance, which holds for every path
// produced by the dijkstra and dfs packages.
//
// FormatDuration gives the compact time strings used throughout the UI.
package route
