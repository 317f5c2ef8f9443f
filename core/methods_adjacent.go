// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Both return adjacency insertion order; NeighborIDs drops nothing since
//     multi-edges are rejected at insertion.
// Concurrency:
//   - muVert read lock, then muEdgeAdj read lock.

package core

// Neighbors returns the adjacency list of id in insertion order.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Copy the list so callers can never mutate graph state.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.locations[id]; !ok {
		return nil, ErrVertexNotFound
	}

	adj := g.adjacency[id]
	out := make([]Neighbor, len(adj))
	copy(out, adj)

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id in insertion order.
// Errors are propagated from Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(nbs))
	for i, nb := range nbs {
		out[i] = nb.ID
	}

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(nbs), nil
}
