// Package prim_kruskal computes the campus "backbone": the cheapest set of
// walkways that still connects every location, i.e. a minimum spanning tree
// of the undirected campus graph.
//
// The backbone answers maintenance questions (which paths must stay open for
// every building to remain reachable, and how long they are in total) and is
// served by the HTTP API next to the routing endpoints.
//
// Algorithms
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//     Sort all edges by distance, then merge components with a disjoint-set.
//     Time O(E log E + α(V)·E), space O(V + E). The sort is stable over the
//     edge catalog, so equal distances keep insertion order.
//
//   - Prim(g, root) ([]core.Edge, int64, error)
//     Grow one tree from root with a min-heap of candidate edges.
//     Time O(E log E), space O(V + E). Equal distances pop in push order.
//
// Both return the same total distance on a connected graph; the edge sets can
// differ only between walkways of equal distance.
//
// Error conditions
//
//   - ErrInvalidGraph        nil graph, or Compute with an unknown method.
//   - ErrEmptyRoot           Prim with root == "".
//   - core.ErrVertexNotFound Prim root is not a location.
//   - ErrDisconnected        empty graph, or some location unreachable.
package prim_kruskal
