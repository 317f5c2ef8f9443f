package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Prim computes the minimum spanning tree by growing it from root with a
// min-heap of candidate edges.
//
// Error conditions:
//   - ErrInvalidGraph        nil graph.
//   - ErrDisconnected        empty graph, or some location unreachable from root.
//   - ErrEmptyRoot           root == "".
//   - core.ErrVertexNotFound root is not a location.
//
// Candidates with equal distance pop in push order, and neighbors are pushed
// in adjacency order, so the tree is deterministic. Tree edges are oriented
// From the tree side To the newly attached location and carry the walkway time.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("prim_kruskal: root %q: %w", root, core.ErrVertexNotFound)
	}

	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var total int64
	pq := &edgePQ{}
	var seq uint64

	attach := func(u string) error {
		visited[u] = true
		nbs, err := graph.Neighbors(u)
		if err != nil {
			return err
		}
		for _, nb := range nbs {
			if visited[nb.ID] {
				continue
			}
			seq++
			heap.Push(pq, &edgeItem{from: u, to: nb.ID, dist: nb.Weight, seq: seq})
		}

		return nil
	}

	if err := attach(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		it := heap.Pop(pq).(*edgeItem)
		if visited[it.to] {
			continue
		}
		d, _ := graph.Detail(it.from, it.to)
		mst = append(mst, core.Edge{From: it.from, To: it.to, Distance: it.dist, Time: d.Time})
		total += it.dist
		if err := attach(it.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// edgeItem is a candidate tree edge.
type edgeItem struct {
	from, to string
	dist     int64
	seq      uint64
}

// edgePQ is a min-heap of candidates ordered by (dist, seq).
type edgePQ []*edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
