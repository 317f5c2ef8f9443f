// SPDX-License-Identifier: MIT
//
// File: navigator.go
// Role: facade over the campus graph: validation, search, presentation and
//       error mapping for the shortest route and the ranked route list.

package navigator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/matrix"
	"github.com/katalvlaran/campusnav/route"
)

// Navigator answers routing questions over one immutable campus graph.
// It is safe for concurrent use.
type Navigator struct {
	g        *core.Graph
	log      *zap.Logger
	maxDepth int

	tableOnce sync.Once
	table     *matrix.Table
	tableErr  error
}

// New returns a Navigator over g. g must be fully built and not modified afterwards.
func New(g *core.Graph, opts ...Option) *Navigator {
	n := &Navigator{
		g:        g,
		log:      zap.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// MaxDepth returns the default enumeration bound.
func (n *Navigator) MaxDepth() int { return n.maxDepth }

// Graph returns the underlying graph.
func (n *Navigator) Graph() *core.Graph { return n.g }

// ComputeShortestPath returns the cheapest route from start to end.
//
// Errors: ErrLocationNotFound for unknown IDs, ErrNoRoute when end is
// unreachable, or the context error when ctx is cancelled.
func (n *Navigator) ComputeShortestPath(ctx context.Context, start, end string) (*Route, error) {
	if err := n.requireLocations(start, end); err != nil {
		return nil, err
	}

	began := time.Now()
	res, err := dijkstra.ShortestPath(n.g, start, end, dijkstra.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("navigator: shortest path: %w", err)
	}
	if !res.Reachable {
		n.log.Info("no route",
			zap.String("from", start), zap.String("to", end))
		return nil, fmt.Errorf("%w: %s → %s", ErrNoRoute, start, end)
	}

	r := n.routeOf(core.Path{Nodes: res.Path, Distance: res.Distance}, 1)
	n.log.Debug("shortest path",
		zap.String("from", start),
		zap.String("to", end),
		zap.Int64("distance", r.TotalDistance),
		zap.Int("steps", r.StepCount),
		zap.Duration("took", time.Since(began)))

	return &r, nil
}

// ComputeAllPaths returns every simple route of at most maxDepth locations,
// cheapest first. maxDepth < 1 selects the configured default.
//
// An empty enumeration is never returned as a nil error with no routes: the
// result is (nil, err), and err is the message meant for the user. When no
// route fits the bound, err is ErrNoRoute; if a longer route exists it is a
// *DepthError carrying the bound that would find it. Callers that only want
// the list can treat any error as "no options".
func (n *Navigator) ComputeAllPaths(ctx context.Context, start, end string, maxDepth int) ([]Route, error) {
	return n.ComputeBestPaths(ctx, start, end, maxDepth, 0)
}

// ComputeBestPaths is ComputeAllPaths keeping only the limit cheapest routes.
// limit < 1 keeps all of them. Empty results are reported the same way, as
// (nil, ErrNoRoute) or (nil, *DepthError).
func (n *Navigator) ComputeBestPaths(ctx context.Context, start, end string, maxDepth, limit int) ([]Route, error) {
	if err := n.requireLocations(start, end); err != nil {
		return nil, err
	}
	if maxDepth < 1 {
		maxDepth = n.maxDepth
	}

	opts := []dfs.Option{dfs.WithContext(ctx), dfs.WithMaxLength(maxDepth)}
	if limit > 0 {
		opts = append(opts, dfs.WithLimit(limit))
	}

	began := time.Now()
	paths, err := dfs.AllPaths(n.g, start, end, opts...)
	if err != nil {
		return nil, fmt.Errorf("navigator: enumerate: %w", err)
	}
	if len(paths) == 0 {
		return nil, n.explainEmpty(ctx, start, end, maxDepth)
	}

	routes := make([]Route, len(paths))
	for i, p := range paths {
		routes[i] = n.routeOf(p, i+1)
	}
	n.log.Debug("all paths",
		zap.String("from", start),
		zap.String("to", end),
		zap.Int("max_depth", maxDepth),
		zap.Int("routes", len(routes)),
		zap.Duration("took", time.Since(began)))

	return routes, nil
}

// explainEmpty turns an empty enumeration into ErrNoRoute or a *DepthError.
func (n *Navigator) explainEmpty(ctx context.Context, start, end string, maxDepth int) error {
	hops, err := bfs.HopDistance(n.g, start, end, bfs.WithContext(ctx))
	switch {
	case err == nil:
		n.log.Info("no route within depth",
			zap.String("from", start), zap.String("to", end),
			zap.Int("max_depth", maxDepth), zap.Int("required", hops+1))
		return &DepthError{MaxDepth: maxDepth, Required: hops + 1}
	case errors.Is(err, bfs.ErrUnreachable):
		n.log.Info("no route",
			zap.String("from", start), zap.String("to", end))
		return fmt.Errorf("%w: %s → %s", ErrNoRoute, start, end)
	default:
		return fmt.Errorf("navigator: hop distance: %w", err)
	}
}

// PresentRoute annotates an arbitrary path with per-step details.
func (n *Navigator) PresentRoute(p core.Path) route.Result {
	return route.Present(n.g, p, route.WithPolyline())
}

// Locations returns every location in catalog order.
func (n *Navigator) Locations() []core.Location {
	return n.g.Locations()
}

// Location returns one location or ErrLocationNotFound.
func (n *Navigator) Location(id string) (core.Location, error) {
	l, err := n.g.Location(id)
	if err != nil {
		return core.Location{}, fmt.Errorf("%w: %q", ErrLocationNotFound, id)
	}

	return l, nil
}

// LocationName returns the display name of id, or "Unknown".
func (n *Navigator) LocationName(id string) string {
	return n.g.LocationName(id)
}

// PathDetail returns the distance and time of the direct walkway between
// two locations. ok is false (and the Detail zero) when none exists.
func (n *Navigator) PathDetail(from, to string) (core.Detail, bool) {
	return n.g.Detail(from, to)
}

// Nearest returns the location closest to a WGS84 point and its distance in metres.
func (n *Navigator) Nearest(lat, lng float64) (core.Location, float64, error) {
	return geo.Nearest(n.g.Locations(), lat, lng)
}

func (n *Navigator) requireLocations(ids ...string) error {
	for _, id := range ids {
		if !n.g.HasVertex(id) {
			return fmt.Errorf("%w: %q", ErrLocationNotFound, id)
		}
	}

	return nil
}

func (n *Navigator) routeOf(p core.Path, rank int) Route {
	r := Route{
		Result:   n.PresentRoute(p),
		Rank:     rank,
		Shortest: rank == 1,
	}
	r.Duration = r.FormattedTime()

	from, errFrom := n.g.Location(p.Start())
	to, errTo := n.g.Location(p.End())
	if errFrom == nil && errTo == nil {
		r.MapsURL, _ = geo.DirectionsURL(from, to)
	}

	return r
}
