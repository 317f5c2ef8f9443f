package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/campusnav/core"
)

// Kruskal computes the minimum spanning tree of the campus graph with a
// disjoint-set (union-find) using path compression and union by rank.
//
// Steps:
//  1. Validate: graph != nil; |V| == 0 → ErrDisconnected; |V| == 1 → empty tree.
//  2. Collect edges via graph.Edges(), skipping self-loops.
//  3. Sort by ascending Distance. The sort is stable, so equal distances keep
//     catalog order and the result is deterministic.
//  4. Take every edge joining two different components until |V|−1 edges.
//  5. Fewer than |V|−1 edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	switch len(vertices) {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		return []core.Edge{}, 0, nil
	}

	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Distance < edges[j].Distance
	})

	ds := newDisjointSet(vertices)
	mst := make([]core.Edge, 0, len(vertices)-1)
	var total int64
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		total += e.Distance
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find forest keyed by location ID.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// find walks to the root, halving the path as it goes.
func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
