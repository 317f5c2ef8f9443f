// Package bfs counts hops: breadth-first search over the campus graph,
// ignoring walkway lengths.
//
//   - BFS(g, start, opts...) returns locations in dequeue order with their hop
//     counts and predecessors; Result.PathTo rebuilds a fewest-hops path.
//   - HopDistance(g, start, end) is the fewest walkways between two locations.
//     Route enumeration bounds paths in locations, so a route exists within a
//     bound of n iff HopDistance+1 ≤ n. The navigator uses this to tell
//     "unreachable" from "bound too small".
//
// Neighbors come from core.Graph.NeighborIDs in insertion order, so a fixed
// map always yields the same traversal. Time O(V + E), memory O(V).
//
// Errors: ErrGraphNil, ErrLocationNotFound, ErrOptionViolation (negative
// MaxHops), ErrUnreachable, the context error, or a wrapped Visit error.
package bfs
