// Package navigator is the entry point for applications: it ties the graph,
// the search packages and the presenter together behind a small API.
//
//	nav := navigator.New(g, navigator.WithLogger(log), navigator.WithMaxDepth(8))
//	best, err := nav.ComputeShortestPath(ctx, "1", "8")
//	options, err := nav.ComputeAllPaths(ctx, "1", "8", 0)
//
// Errors separate the two user-visible failures:
//
//   - ErrLocationNotFound  an ID is not on the map.
//   - ErrNoRoute           both IDs are known but nothing connects them. When
//     enumeration comes back empty only because of the node bound, the error
//     is a *DepthError whose Required field is the smallest bound that works.
//
// These errors are the user-facing answer, not only a fault report: the
// route listings return (nil, err) rather than an empty slice, and the HTTP
// layer turns err into the message shown to the user.
//
// Planning helpers work on the whole map rather than one pair:
//
//   - PlanTour orders several stops into the cheapest walk (tsp over the
//     lazily built all-pairs DistanceTable), then expands each leg with Dijkstra.
//   - Backbone returns the minimum spanning tree of the walkways.
//
// Session keeps the route options of the last request and a bounded request
// history for one user, replacing process-wide "current route" state.
// Sessions is the registry of them, capped in size with least recently used
// eviction and an idle TTL.
package navigator
