// Package dfs defines types and options for bounded simple-path enumeration,
// including cancellation, a length bound and a result limit.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxLength is the default bound on the number of nodes in a path.
const DefaultMaxLength = 10

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to AllPaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates that the start or end ID does not exist in
	// the graph. It wraps core.ErrVertexNotFound.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of AllPaths.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxLength bounds the node count of every reported path (inclusive).
	// Branches are abandoned as soon as they would exceed it.
	MaxLength int

	// Limit, if positive, keeps only the Limit cheapest paths after sorting.
	Limit int

	err error
}

// DefaultOptions returns Options with a background context,
// MaxLength = DefaultMaxLength and no result limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxLength: DefaultMaxLength,
	}
}

// WithContext sets the Context for the search. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxLength bounds the node count of enumerated paths.
//
//	n ≥ 1: paths have at most n nodes
//	n < 1: invalid option → ErrOptionViolation
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxLength must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
}

// WithLimit keeps only the k cheapest paths. k == 0 disables the limit.
func WithLimit(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Limit = k
	}
}
