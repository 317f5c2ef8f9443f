package tsp

import "github.com/katalvlaran/campusnav/matrix"

// Solve orders the stops of dist starting from stop 0.
//
// Up to opts.MaxExact stops the answer is optimal (Held–Karp); above that it
// is nearest neighbour improved by 2-opt. ErrIncompleteGraph is returned when
// every order crosses an Inf entry.
func Solve(dist *matrix.Dense, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if dist == nil || dist.Order() == 0 {
		return Result{}, ErrEmpty
	}

	if dist.Order() <= o.MaxExact {
		return Exact(dist, o.Closed)
	}

	init, err := NearestNeighbor(dist, o.Closed)
	if err != nil {
		return Result{}, err
	}
	tour, cost, err := TwoOpt(dist, init, o.Closed, o.TwoOptMaxIters)
	if err != nil {
		return Result{}, err
	}
	if cost == matrix.Inf {
		return Result{}, ErrIncompleteGraph
	}

	return Result{Order: tour, Cost: cost}, nil
}
