// SPDX-License-Identifier: MIT
//
// Package dijkstra defines result types and configuration options
// for the campus shortest-path search.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Infinity is the distance reported for an unreachable target.
// Adapters should branch on Result.Reachable rather than compare against it.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the start or finish ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the start or finish does not exist in the graph.
	// It wraps core.ErrVertexNotFound so callers can test for either.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the search.
//
// Ctx          – checked once per frontier extraction; cancellation aborts with Ctx.Err().
// MaxDistance  – stop once the smallest tentative distance exceeds this value.
//
//	Must be ≥ 0. Default is Infinity (no cap).
type Options struct {
	Ctx         context.Context
	MaxDistance int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Locations whose shortest distance would exceed this value are treated as unreachable.
// Negative values panic: they signal a programming error in the caller.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with a background context and no distance cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: Infinity,
	}
}

// Result is the outcome of a single start→finish search.
//
// For an unreachable finish, Distance is Infinity, Reachable is false and
// Path holds only the start node.
type Result struct {
	Start     string
	Finish    string
	Distance  int64
	Path      []string
	Reachable bool
}
