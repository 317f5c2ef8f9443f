// Package prim_kruskal defines configuration options and sentinel errors for
// computing the campus walkway backbone (a minimum spanning tree).
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/campusnav/core"
)

// ErrInvalidGraph indicates a nil graph or an unknown Method.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph and a known method")

// ErrEmptyRoot indicates that no start location was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that some location cannot be reached, so no
// spanning tree covers the whole campus. It also applies to an empty graph.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions selects the algorithm and, for Prim, the root location.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting location for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm; allowed values are MethodPrim and MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRoot sets the starting location for Prim. Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) { opts.Root = root }
}

// DefaultOptions selects Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm chosen by opts.
//
// Returns the tree edges, their total distance, and an error when the graph
// is nil, disconnected, or the method is unknown (ErrInvalidGraph).
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, cfg.Root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}

// TotalTime sums the walking time of edges.
func TotalTime(edges []core.Edge) int64 {
	var t int64
	for _, e := range edges {
		t += e.Time
	}

	return t
}
