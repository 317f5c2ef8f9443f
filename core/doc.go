// Package core provides the weighted, undirected campus graph used by every
// routing algorithm in this module.
//
// A Graph G = (V,E) stores:
//
//   - a location catalog: ID → Location{Name, Kind, coordinates}
//   - adjacency lists: ID → []Neighbor{ID, Weight}, kept in insertion order
//   - an edge catalog in insertion order
//   - a symmetric detail table: (a,b) and (b,a) → Detail{Distance, Time}
//
// The graph is built once at startup and read concurrently afterwards. Two
// sync.RWMutex locks (muVert for locations, muEdgeAdj for adjacency, edges
// and details) make concurrent reads safe. Search algorithms keep all their
// mutable state local to the call; nothing is ever attached to the Graph.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()        permit self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//	– WithCapacity(n)    pre-size internal maps.
//
// Location options: WithKind(kind), WithCoordinates(lat, lng).
// Edge options:     WithTime(seconds).
//
// Core Methods:
//
//	AddVertex(id, name string, opts ...LocationOption) error   // O(1), idempotent
//	AddEdge(a, b string, weight int64, opts ...EdgeOption) error // O(deg)
//	Neighbors(id string) ([]Neighbor, error)                  // O(d), insertion order
//	LocationName(id string) string                            // never fails
//	Detail(a, b string) (Detail, bool)                        // symmetric
//	PathWeight(nodes []string) (int64, error)                 // O(len)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length ID
//	ErrVertexNotFound      – location never added
//	ErrEdgeNotFound        – no direct connection
//	ErrNegativeWeight      – distance < 0
//	ErrNegativeTime        – time < 0
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – second edge between the same pair
package core
