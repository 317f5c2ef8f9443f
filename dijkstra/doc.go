// Package dijkstra finds the cheapest route between two campus locations.
//
// Overview:
//
//   - ShortestPath(g, start, finish) returns the minimum total distance and the
//     reconstructed path start…finish inclusive.
//   - Distances(g, source) returns the full single-source distance and
//     predecessor maps; useful for diagnostics and property checks.
//
// Algorithm:
//
//  1. Every vertex starts at Infinity except start (0); every predecessor is
//     none. Every vertex is pushed onto the frontier with its initial key.
//  2. The minimum-keyed vertex is extracted. Popping the finish stops the search.
//  3. Otherwise each neighbor is relaxed; an improved neighbor gets a new
//     distance, a new predecessor and a fresh frontier entry. Old entries are
//     skipped when they surface.
//  4. If the frontier runs dry (or only Infinity keys remain) the finish is
//     unreachable.
//
// Frontier contract:
//
//   - Each extraction returns the minimum key among enqueued entries.
//   - Equal keys pop in push order, so a fixed graph always yields the same path.
//   - Neighbors are relaxed in adjacency insertion order with a strict "<",
//     so on equal candidate distances the first relaxation wins.
//
// Unreachable finish:
//
//	Result{Distance: Infinity, Reachable: false, Path: []string{start}}
//
// This is a normal outcome; callers translate it into "no route found".
//
// Errors (sentinel):
//
//   - ErrEmptySource     start or finish is "".
//   - ErrNilGraph        nil graph.
//   - ErrVertexNotFound  start or finish not in the graph (also matches core.ErrVertexNotFound).
//   - ErrBadMaxDistance  (panic) negative WithMaxDistance.
//   - context errors     when WithContext is cancelled.
//
// Thread safety:
//
//   - Searches keep all state in a per-call runner; concurrent searches on one
//     fully built graph are safe.
package dijkstra
