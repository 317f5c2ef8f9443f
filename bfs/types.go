// Package bfs defines the options, result and errors of the hop-count search.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrLocationNotFound is returned when the start (or, for HopDistance,
	// the target) is not on the map.
	ErrLocationNotFound = errors.New("bfs: location not found")

	// ErrOptionViolation is returned for an invalid option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable means no walkway chain links the two locations
	// (within MaxHops, when set).
	ErrUnreachable = errors.New("bfs: target not reachable")
)

// Options tunes a search. Invalid values are recorded and reported by BFS.
type Options struct {
	// Ctx is checked before each location is dequeued.
	Ctx context.Context

	// Visit runs as each location is dequeued; a non-nil error stops the search.
	Visit func(id string, hops int) error

	// MaxHops bounds how far the search expands; 0 means unbounded.
	MaxHops int

	// Allow decides whether the walkway from→to may be used.
	Allow func(from, to string) bool

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: background context, no bound, every walkway allowed.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Visit: func(string, int) error { return nil },
		Allow: func(string, string) bool { return true },
	}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVisit installs the per-location hook; nil is ignored.
func WithVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.Visit = fn
		}
	}
}

// WithMaxHops bounds the search; negative values are an ErrOptionViolation.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops %d < 0", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithAllow restricts which walkways may be taken; nil is ignored.
func WithAllow(fn func(from, to string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Allow = fn
		}
	}
}

// Result is the search tree: locations in dequeue order, hop counts and
// the predecessor of every reached location except the start.
type Result struct {
	Order []string
	Hops  map[string]int
	Via   map[string]string
}

// PathTo returns the fewest-hops path from the start to dest, or
// ErrUnreachable when dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	h, ok := r.Hops[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}
	path := make([]string, h+1)
	for i, cur := h, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Via[cur]
	}

	return path, nil
}
