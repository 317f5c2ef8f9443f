// SPDX-License-Identifier: MIT
//
// File: planning.go
// Role: multi-stop tours, the all-pairs distance table and the walkway backbone.

package navigator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/matrix"
	"github.com/katalvlaran/campusnav/prim_kruskal"
	"github.com/katalvlaran/campusnav/route"
	"github.com/katalvlaran/campusnav/tsp"
)

// Tour is the cheapest order to visit a set of stops, starting at the first.
type Tour struct {
	// Result is the whole walk, every leg joined end to end.
	route.Result
	// Stops lists the stop IDs in visiting order; a round trip repeats the first.
	Stops []string `json:"stops"`
	// Legs holds the shortest walk between each consecutive pair of stops.
	Legs []route.Result `json:"legs"`
	// Closed marks a round trip.
	Closed bool `json:"closed"`
	// Optimal is true when the order is proven cheapest.
	Optimal bool `json:"optimal"`
	// Duration is the formatted total walking time.
	Duration string `json:"duration"`
}

// Backbone is the cheapest set of walkways keeping every location connected.
type Backbone struct {
	Edges         []core.Edge
	TotalDistance int64
	TotalTime     int64
	Duration      string
}

// DistanceTable returns the all-pairs walking distance table, built on first use.
func (n *Navigator) DistanceTable() (*matrix.Table, error) {
	n.tableOnce.Do(func() {
		began := time.Now()
		n.table, n.tableErr = matrix.DistanceTable(n.g)
		if n.tableErr == nil {
			n.log.Debug("distance table",
				zap.Int("locations", n.table.Len()),
				zap.Duration("took", time.Since(began)))
		}
	})
	if n.tableErr != nil {
		return nil, fmt.Errorf("navigator: distance table: %w", n.tableErr)
	}

	return n.table, nil
}

// PlanTour orders stops into the cheapest walk that starts at stops[0] and
// visits every other stop once. Repeated IDs count once. returnToStart
// asks for a round trip.
//
// Errors: ErrNoStops for an empty list, ErrLocationNotFound for unknown IDs,
// ErrNoRoute when some stop cannot be reached from the others.
func (n *Navigator) PlanTour(ctx context.Context, stops []string, returnToStart bool) (*Tour, error) {
	stops = uniqueStops(stops)
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	if err := n.requireLocations(stops...); err != nil {
		return nil, err
	}

	table, err := n.DistanceTable()
	if err != nil {
		return nil, err
	}
	sub, err := table.Sub(stops)
	if err != nil {
		return nil, fmt.Errorf("navigator: tour matrix: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var opts []tsp.Option
	if returnToStart {
		opts = append(opts, tsp.WithClosed())
	}
	began := time.Now()
	sol, err := tsp.Solve(sub, opts...)
	if errors.Is(err, tsp.ErrIncompleteGraph) {
		n.log.Info("no tour", zap.Strings("stops", stops))
		return nil, fmt.Errorf("%w: not every stop is reachable", ErrNoRoute)
	}
	if err != nil {
		return nil, fmt.Errorf("navigator: tour: %w", err)
	}

	t := &Tour{
		Stops:   make([]string, len(sol.Order)),
		Closed:  returnToStart,
		Optimal: sol.Exact,
	}
	for i, idx := range sol.Order {
		t.Stops[i] = stops[idx]
	}

	walk := core.Path{Nodes: []string{t.Stops[0]}}
	for i := 0; i+1 < len(t.Stops); i++ {
		leg, err := dijkstra.ShortestPath(n.g, t.Stops[i], t.Stops[i+1], dijkstra.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("navigator: tour leg: %w", err)
		}
		p := core.Path{Nodes: leg.Path, Distance: leg.Distance}
		t.Legs = append(t.Legs, route.Present(n.g, p))
		walk.Nodes = append(walk.Nodes, leg.Path[1:]...)
		walk.Distance += leg.Distance
	}
	t.Result = n.PresentRoute(walk)
	t.Duration = t.FormattedTime()

	n.log.Debug("tour",
		zap.Strings("stops", t.Stops),
		zap.Bool("closed", t.Closed),
		zap.Bool("optimal", t.Optimal),
		zap.Int64("distance", t.TotalDistance),
		zap.Duration("took", time.Since(began)))

	return t, nil
}

// Backbone returns the minimum spanning tree of the campus walkways.
func (n *Navigator) Backbone() (*Backbone, error) {
	edges, total, err := prim_kruskal.Kruskal(n.g)
	if errors.Is(err, prim_kruskal.ErrDisconnected) {
		return nil, ErrDisconnected
	}
	if err != nil {
		return nil, fmt.Errorf("navigator: backbone: %w", err)
	}
	b := &Backbone{
		Edges:         edges,
		TotalDistance: total,
		TotalTime:     prim_kruskal.TotalTime(edges),
	}
	b.Duration = route.FormatDuration(b.TotalTime)

	return b, nil
}

func uniqueStops(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
