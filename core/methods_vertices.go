// File: methods_vertices.go
// Role: Location lifecycle & queries.
//
// Determinism:
//   - Vertices() and Locations() return insertion order.
//
// Concurrency:
//   - Location catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj, taken after muVert.

package core

// AddVertex registers a location if it is missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, return early if the ID is present.
//     The existing name is kept; AddVertex never overwrites.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap an empty adjacency list
//     so Neighbors on an isolated location returns an empty slice.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id, name string, opts ...LocationOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.locations[id]; exists {
		return nil // no-op for existing location
	}

	loc := &Location{ID: id, Name: name}
	for _, opt := range opts {
		opt(loc)
	}
	g.locations[id] = loc
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = []Neighbor{}
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the location ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.locations[id]

	return ok
}

// LocationName returns the registered display name of id, or UnknownLocation.
// It never fails: the lookup is used purely for presentation.
func (g *Graph) LocationName(id string) string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if loc, ok := g.locations[id]; ok {
		return loc.Name
	}

	return UnknownLocation
}

// Location returns a copy of the location registered under id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the location does not exist.
func (g *Graph) Location(id string) (Location, error) {
	if id == "" {
		return Location{}, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	loc, ok := g.locations[id]
	if !ok {
		return Location{}, ErrVertexNotFound
	}

	return *loc, nil
}

// Vertices returns all location IDs in insertion order.
// The returned slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Locations returns copies of all locations in insertion order.
// Complexity: O(V).
func (g *Graph) Locations() []Location {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]Location, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.locations[id])
	}

	return out
}

// VertexCount returns the number of registered locations.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}
