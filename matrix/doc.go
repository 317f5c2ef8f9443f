// Package matrix computes all-pairs shortest distances over the campus graph.
//
//   - Dense is a square int64 matrix with Inf for "no path".
//   - FloydWarshall closes a Dense in place (k → i → j, strict improvements).
//   - DistanceTable(g) builds and closes the matrix for every location of g and
//     keeps the ID ↔ index mapping; Sub extracts the rows and columns of a
//     subset of stops for the tour planner.
//
// Matrices are O(V²) memory and the closure O(V³) time: right for a campus
// with tens or hundreds of locations, wrong for a city.
package matrix
