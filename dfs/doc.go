// Package dfs implements bounded simple-path enumeration on a core.Graph.
//
// What:
//
//   - AllPaths(g, start, end, opts...) lists every path from start to end that
//     never revisits a location and has at most MaxLength nodes (default 10),
//     sorted by total distance ascending. Ties keep discovery order.
//
// How:
//
//   - Depth-first search with an explicit stack. A visited set scoped to the
//     current path is marked on entry and cleared on exit, so a location can
//     appear in sibling branches but never twice in one path.
//   - Reaching end records the path and does not extend it.
//   - A branch is abandoned once it would exceed MaxLength nodes, even if the
//     target was not reached.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked on every stack step.
//   - WithMaxLength(n)   node bound, n ≥ 1.
//   - WithLimit(k)       keep the k cheapest paths.
//
// Complexity:
//
//   - Time:   exponential in the branching factor in the worst case. This is a
//     deliberate scope limit: campus maps are small and fixed.
//   - Memory: O(MaxLength) for the stack plus the reported paths.
//
// Errors:
//
//   - ErrGraphNil          nil graph.
//   - ErrVertexNotFound    start or end not in the graph (matches core.ErrVertexNotFound).
//   - ErrOptionViolation   invalid MaxLength or Limit.
//   - context.Canceled     search cancelled via context.
//
// An empty result is not an error: it means "no route within the bound".
package dfs
