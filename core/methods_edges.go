// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, HasEdge, EdgeWeight, Detail, Edges,
//       EdgeCount and PathWeight.
// Determinism:
//   - Edges() returns insertion order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock, vertex checks under muVert read lock.

package core

import "fmt"

// AddEdge connects locations a and b with an undirected edge of the given weight.
//
// Steps:
//  1. Validate IDs, weight, time and loops.
//  2. Under muVert read lock, require both endpoints to be registered.
//  3. Under muEdgeAdj write lock, reject a second edge between the same pair.
//  4. Append symmetric adjacency entries: a gets (b, weight), b gets (a, weight).
//  5. Record the detail entry for (a,b) and (b,a).
//
// Zero-weight edges are legal and model co-located points.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrNegativeWeight, ErrNegativeTime,
//     ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(deg(a)) for the duplicate check, O(1) amortized otherwise.
func (g *Graph) AddEdge(a, b string, weight int64, opts ...EdgeOption) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrNegativeWeight, a, b, weight)
	}
	if a == b && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	e := Edge{From: a, To: b, Distance: weight}
	for _, opt := range opts {
		opt(&e)
	}
	if e.Time < 0 {
		return fmt.Errorf("%w: %s-%s time=%d", ErrNegativeTime, a, b, e.Time)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.locations[a]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	if _, ok := g.locations[b]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.details[pairKey{a, b}]; dup {
		return fmt.Errorf("%w: %s-%s", ErrMultiEdgeNotAllowed, a, b)
	}

	g.edges = append(g.edges, e)
	g.adjacency[a] = append(g.adjacency[a], Neighbor{ID: b, Weight: weight})
	if a != b {
		g.adjacency[b] = append(g.adjacency[b], Neighbor{ID: a, Weight: weight})
	}

	d := Detail{Distance: e.Distance, Time: e.Time}
	g.details[pairKey{a, b}] = d
	g.details[pairKey{b, a}] = d

	return nil
}

// HasEdge reports whether a and b are directly connected (either ordering).
func (g *Graph) HasEdge(a, b string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.details[pairKey{a, b}]

	return ok
}

// EdgeWeight returns the weight of the edge between a and b.
func (g *Graph) EdgeWeight(a, b string) (int64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	d, ok := g.details[pairKey{a, b}]

	return d.Distance, ok
}

// Detail resolves the distance/time pair for a connected pair of locations.
// The lookup is symmetric. Unknown pairs report (Detail{}, false).
func (g *Graph) Detail(a, b string) (Detail, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	d, ok := g.details[pairKey{a, b}]

	return d, ok
}

// Edges returns a copy of the edge catalog in insertion order.
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// PathWeight sums the edge weights along nodes.
// Every consecutive pair must be connected; otherwise ErrEdgeNotFound is
// returned naming the first missing hop. A single-node or empty sequence
// weighs zero.
func (g *Graph) PathWeight(nodes []string) (int64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var total int64
	for i := 1; i < len(nodes); i++ {
		d, ok := g.details[pairKey{nodes[i-1], nodes[i]}]
		if !ok {
			return 0, fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, nodes[i-1], nodes[i])
		}
		total += d.Distance
	}

	return total, nil
}
