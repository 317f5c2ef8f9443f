// Package dfs enumerates every simple path between two locations of a
// core.Graph, up to a node-count bound, using an explicit-stack depth-first
// search.
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/campusnav/core"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	id     string          // vertex at this depth
	weight int64           // weight of the edge that entered id
	nbs    []core.Neighbor // adjacency of id, insertion order
	next   int             // index of the next neighbor to try
}

// pathWalker encapsulates state during enumeration. It never outlives a call.
type pathWalker struct {
	graph  *core.Graph
	opts   Options
	end    string
	stack  []frame
	path   []string
	onPath map[string]bool
	dist   int64
	found  []core.Path
}

// AllPaths returns every simple path from start to end with at most
// MaxLength nodes, sorted ascending by total distance. Paths of equal
// distance keep discovery order.
//
// A path stops at end: end never appears in the middle of a reported path.
// No path within the bound yields an empty, non-nil slice and a nil error;
// this is a normal outcome, not a failure. start == end yields the single
// one-node path of distance 0.
//
// Complexity: exponential in the branching factor in the worst case; intended
// for small fixed maps.
func AllPaths(g *core.Graph, start, end string, opts ...Option) ([]core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	for _, id := range [...]string{start, end} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q: %w", ErrVertexNotFound, id, core.ErrVertexNotFound)
		}
	}

	w := &pathWalker{
		graph:  g,
		opts:   o,
		end:    end,
		path:   make([]string, 0, o.MaxLength),
		onPath: make(map[string]bool, o.MaxLength),
		found:  make([]core.Path, 0),
	}
	if err := w.walk(start); err != nil {
		return nil, err
	}

	sort.SliceStable(w.found, func(i, j int) bool {
		return w.found[i].Distance < w.found[j].Distance
	})
	if o.Limit > 0 && len(w.found) > o.Limit {
		w.found = w.found[:o.Limit]
	}

	return w.found, nil
}

// walk drives the explicit stack. The visiting order is identical to the
// recursive formulation: neighbors in adjacency order, the current node
// marked while its subtree is explored and unmarked on the way back.
func (w *pathWalker) walk(start string) error {
	if start == w.end {
		w.record([]string{start}, 0)
		return nil
	}
	if err := w.enter(start, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbs) {
			w.leave()
			continue
		}
		nb := top.nbs[top.next]
		top.next++

		if w.onPath[nb.ID] {
			continue
		}
		// Prune: the extended path would exceed the bound.
		if len(w.path)+1 > w.opts.MaxLength {
			continue
		}
		if nb.ID == w.end {
			w.record(append(w.path, nb.ID), w.dist+nb.Weight)
			continue
		}
		if err := w.enter(nb.ID, nb.Weight); err != nil {
			return err
		}
	}

	return nil
}

// enter pushes id onto the stack and marks it on the current path.
func (w *pathWalker) enter(id string, weight int64) error {
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, weight: weight, nbs: nbs})
	w.path = append(w.path, id)
	w.onPath[id] = true
	w.dist += weight

	return nil
}

// leave pops the top frame and unmarks its vertex so sibling branches may use it.
func (w *pathWalker) leave() {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, top.id)
	w.dist -= top.weight
}

// record stores a copy of nodes; the caller's slice keeps being mutated.
func (w *pathWalker) record(nodes []string, dist int64) {
	cp := make([]string, len(nodes))
	copy(cp, nodes)
	w.found = append(w.found, core.Path{Nodes: cp, Distance: dist})
}
