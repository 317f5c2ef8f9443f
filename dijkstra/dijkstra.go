// SPDX-License-Identifier: MIT
//
// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log (V + E))
//   - Every vertex is pushed once up front; every successful relaxation pushes again.
//   - Space: O(V + E) for the distance/predecessor maps and the frontier.
//
// Notes on implementation choices:
//
//   - All mutable state lives in a per-call runner; the graph is only read.
//   - Lazy decrease-key: improved vertices are re-pushed and stale entries are
//     skipped when popped.
//   - Equal priorities pop in push order, so results are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// ShortestPath computes the cheapest route from start to finish.
//
// Preconditions and validation (in order):
//  1. start and finish must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain start and finish (ErrVertexNotFound).
//
// start == finish yields distance 0 and the single-node path [start].
// An unreachable finish is not an error: see Result.
func ShortestPath(g *core.Graph, start, finish string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if start == "" || finish == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := requireVertex(g, start); err != nil {
		return nil, err
	}
	if err := requireVertex(g, finish); err != nil {
		return nil, err
	}

	r := newRunner(g, cfg, start, finish)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// Distances computes shortest distances from source to every location.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Infinity if unreachable).
//   - prev: vertex ID → predecessor on one shortest path ("" for the source
//     and for unreachable vertices).
func Distances(g *core.Graph, source string, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if err := requireVertex(g, source); err != nil {
		return nil, nil, err
	}

	r := newRunner(g, cfg, source, "")
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

func requireVertex(g *core.Graph, id string) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: %q: %w", ErrVertexNotFound, id, core.ErrVertexNotFound)
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // read-only within the search
	options Options           // cancellation and distance cap
	start   string            // source vertex
	finish  string            // target vertex; "" runs to exhaustion
	dist    map[string]int64  // vertex ID → best known distance
	prev    map[string]string // vertex ID → predecessor
	visited map[string]bool   // vertex ID → distance finalised
	pq      nodePQ            // frontier
	seq     uint64            // push counter for FIFO tie-breaking
	found   bool              // finish was popped
}

// newRunner initialises distances and predecessors and seeds the frontier
// with every vertex keyed by its initial distance, in insertion order.
func newRunner(g *core.Graph, cfg Options, start, finish string) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		finish:  finish,
		dist:    make(map[string]int64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}

	for _, v := range vertices {
		r.dist[v] = Infinity
		r.prev[v] = ""
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	for _, v := range vertices {
		r.push(v, r.dist[v])
	}

	return r
}

func (r *runner) push(id string, d int64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// process is the main loop. It terminates when the finish is popped, the
// frontier empties, the smallest key is Infinity (nothing left reachable),
// or the smallest key exceeds MaxDistance.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Skip stale entries left behind by lazy decrease-key.
		if r.visited[u] || d > r.dist[u] {
			continue
		}
		if d == Infinity || d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.finish {
			r.found = true
			break
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u in adjacency order.
// Strict "<" means the first relaxation wins ties.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, nb := range neighbors {
		if r.visited[nb.ID] {
			continue
		}
		if nb.Weight > Infinity-du {
			continue // would overflow; cannot be an improvement
		}
		newDist := du + nb.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = newDist
		r.prev[nb.ID] = u
		r.push(nb.ID, newDist)
	}

	return nil
}

// result reconstructs the path by following predecessor links from finish.
func (r *runner) result() *Result {
	res := &Result{Start: r.start, Finish: r.finish, Distance: Infinity}
	if !r.found {
		res.Path = []string{r.start}
		return res
	}

	var rev []string
	for cur := r.finish; cur != ""; cur = r.prev[cur] {
		rev = append(rev, cur)
		if cur == r.start {
			break
		}
	}
	res.Path = make([]string, len(rev))
	for i := range rev {
		res.Path[i] = rev[len(rev)-1-i]
	}
	res.Distance = r.dist[r.finish]
	res.Reachable = true

	return res
}

// nodeItem is a frontier entry: a vertex, its tentative distance and the
// push sequence number used to break ties.
type nodeItem struct {
	id   string
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
