// Package campusnav is a walking-route engine for a campus map: pick a start
// and a destination among named locations and get route options with
// distance and time estimates.
//
// 🚀 What is in the box?
//
//	• Core graph: locations, undirected walkways, (distance, time) detail table
//	• Shortest route: Dijkstra with a deterministic frontier
//	• Route options: every simple route within a stop bound, cheapest first
//	• Hop counts: BFS, used to explain "no route within N stops"
//	• Tours: cheapest order for several stops (Held–Karp, 2-opt)
//	• Backbone: minimum spanning tree of the walkways
//	• Presentation: per-step names, distance, time, polylines
//	• Service: YAML catalog, zap logging, gin HTTP API, per-user sessions
//
// Packages:
//
//	core/        Graph, Location, Edge, Detail, Path; thread-safe reads
//	dijkstra/    ShortestPath, Distances
//	dfs/         AllPaths with MaxLength / Limit / context
//	bfs/         BFS, HopDistance
//	matrix/      Dense, FloydWarshall, DistanceTable
//	tsp/         Solve, Exact, NearestNeighbor, TwoOpt
//	prim_kruskal/  Kruskal, Prim, Compute
//	route/       Present, FormatDuration
//	geo/         Nearest, EncodePolyline, DirectionsURL
//	campusmap/   YAML catalog, embedded reference campus
//	navigator/   facade: ComputeShortestPath, ComputeAllPaths, PlanTour, Backbone, Session
//	api/         gin handlers and middleware
//	config/      environment and .env
//	logger/      zap constructors
//	cmd/campusnav  the HTTP server
//
// Quick ASCII view of the reference campus:
//
//	1 ─150─ 2 ─180─ 4 ─200─ 6 ─150─ 8
//	│       │       │
//	100    120      95
//	│       │       │
//	7 ─110─ 3 ─90── 5
//	└────────80─────┘
//
//	go run ./cmd/campusnav
package campusnav
