// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade (Stats) and Path helpers.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	IsolatedCount int   // locations without any edge
	TotalDistance int64 // sum of all edge distances
	TotalTime     int64 // sum of all edge times
	AllowsLoops   bool
}

// Stats produces a deterministic snapshot of the graph.
//
// Implementation:
//   - Stage 1: Under muVert, snapshot the loop policy and vertex count.
//   - Stage 2: Under muEdgeAdj, scan adjacency and the edge catalog.
//
// The locks are taken one after the other, never together.
// Complexity: O(V+E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		VertexCount: len(g.order),
		AllowsLoops: g.allowLoops,
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, adj := range g.adjacency {
		if len(adj) == 0 {
			stats.IsolatedCount++
		}
	}
	for _, e := range g.edges {
		stats.TotalDistance += e.Distance
		stats.TotalTime += e.Time
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}

// Len returns the number of nodes on the path.
func (p Path) Len() int { return len(p.Nodes) }

// Steps returns the number of edges traversed (nodes − 1, never negative).
func (p Path) Steps() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// Start returns the first node, or "" for an empty path.
func (p Path) Start() string {
	if len(p.Nodes) == 0 {
		return ""
	}

	return p.Nodes[0]
}

// End returns the last node, or "" for an empty path.
func (p Path) End() string {
	if len(p.Nodes) == 0 {
		return ""
	}

	return p.Nodes[len(p.Nodes)-1]
}

// IsSimple reports whether no node appears twice on the path.
func (p Path) IsSimple() bool {
	seen := make(map[string]struct{}, len(p.Nodes))
	for _, id := range p.Nodes {
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}

	return true
}
