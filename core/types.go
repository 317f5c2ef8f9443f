// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Location, Edge, Neighbor, Detail, Path and Graph declarations,
//       sentinel errors, functional options and the NewGraph constructor.
// Concurrency:
//   - muVert guards the location catalog and its insertion order.
//   - muEdgeAdj guards adjacency lists, the edge catalog and the detail table.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// UnknownLocation is the display name returned for identifiers the graph has
// never seen. Presentation code relies on it instead of an error.
const UnknownLocation = "Unknown"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided location ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a location that was never added.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that two locations are not directly connected.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge distance below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrNegativeTime indicates an edge walking time below zero.
	ErrNegativeTime = errors.New("core: negative edge time")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same pair of locations.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Location is a named point on the campus map.
//
// Locations are immutable once added: AddVertex never overwrites an existing
// entry, so the first registered name wins.
type Location struct {
	// ID is the stable, unique key of the location.
	ID string

	// Name is the human readable display name.
	Name string

	// Kind classifies the location ("Academic Building", "Dining Facility", ...).
	Kind string

	// Lat and Lng are WGS84 coordinates; valid only when HasCoords is true.
	Lat, Lng  float64
	HasCoords bool
}

// Edge is an undirected connection between two locations.
// Distance is the routing weight; Time is the traversal time in seconds.
type Edge struct {
	From     string
	To       string
	Distance int64
	Time     int64
}

// Neighbor is one adjacency entry: the location reachable from the owner
// of the list and the weight of the connecting edge.
type Neighbor struct {
	ID     string
	Weight int64
}

// Detail is the distance/time pair recorded for a connected pair of locations.
// The zero Detail is the documented fallback for unknown pairs.
type Detail struct {
	Distance int64
	Time     int64
}

// Path is an ordered sequence of location IDs, start and end inclusive,
// together with the sum of the traversed edge weights.
type Path struct {
	Nodes    []string
	Distance int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a location to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the internal maps for n locations.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// LocationOption configures optional Location attributes in AddVertex.
type LocationOption func(*Location)

// WithKind sets the location's category.
func WithKind(kind string) LocationOption {
	return func(l *Location) { l.Kind = kind }
}

// WithCoordinates attaches WGS84 coordinates to the location.
func WithCoordinates(lat, lng float64) LocationOption {
	return func(l *Location) {
		l.Lat, l.Lng = lat, lng
		l.HasCoords = true
	}
}

// EdgeOption configures optional Edge attributes in AddEdge.
type EdgeOption func(*Edge)

// WithTime records the traversal time (seconds) of the edge in the detail table.
func WithTime(seconds int64) EdgeOption {
	return func(e *Edge) { e.Time = seconds }
}

// pairKey addresses the detail table. Entries are stored for both orderings.
type pairKey struct {
	from, to string
}

// Graph is the weighted, undirected campus graph.
//
// Adjacency lists keep insertion order: algorithms iterating Neighbors see
// edges in the order they were added, which is what makes tie-breaking in
// the shortest-path and enumeration code reproducible.
type Graph struct {
	muVert    sync.RWMutex // guards locations, order
	muEdgeAdj sync.RWMutex // guards adjacency, edges, details

	allowLoops bool
	capacity   int

	order     []string             // location IDs in insertion order
	locations map[string]*Location // ID → Location

	adjacency map[string][]Neighbor // ID → neighbors in insertion order
	edges     []Edge                // edge catalog in insertion order
	details   map[pairKey]Detail    // (a,b) and (b,a) → Detail
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.order = make([]string, 0, g.capacity)
	g.locations = make(map[string]*Location, g.capacity)
	g.adjacency = make(map[string][]Neighbor, g.capacity)
	g.details = make(map[pairKey]Detail, 2*g.capacity)

	return g
}
