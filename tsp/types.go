// Package tsp defines options, results and sentinel errors for ordering a
// set of campus stops into the cheapest tour.
package tsp

import "errors"

// DefaultMaxExact is the largest stop count solved exactly by default.
// Held–Karp needs O(n·2ⁿ) memory; 12 stops is about 50k states.
const DefaultMaxExact = 12

var (
	// ErrEmpty is returned for a nil or zero-order matrix.
	ErrEmpty = errors.New("tsp: empty matrix")

	// ErrIncompleteGraph is returned when no order visits every stop,
	// i.e. some stop is unreachable from the others.
	ErrIncompleteGraph = errors.New("tsp: no tour visits every stop")

	// ErrOptionViolation is returned for invalid options.
	ErrOptionViolation = errors.New("tsp: invalid option supplied")
)

// Options configures Solve.
type Options struct {
	// Closed requests a round trip back to stop 0.
	Closed bool

	// MaxExact is the largest n solved with Held–Karp; larger inputs use
	// nearest neighbour followed by 2-opt. 0 forces the heuristic.
	MaxExact int

	// TwoOptMaxIters caps accepted 2-opt moves; 0 means run to a local optimum.
	TwoOptMaxIters int

	err error
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns an open tour with the exact solver up to DefaultMaxExact stops.
func DefaultOptions() Options {
	return Options{MaxExact: DefaultMaxExact}
}

// WithClosed requests a round trip ending at stop 0.
func WithClosed() Option {
	return func(o *Options) { o.Closed = true }
}

// WithMaxExact sets the exact-solver threshold. Negative values are invalid,
// values above 20 are clamped to 20.
func WithMaxExact(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = ErrOptionViolation
		case n > 20:
			o.MaxExact = 20
		default:
			o.MaxExact = n
		}
	}
}

// WithTwoOptMaxIters caps the number of accepted 2-opt moves.
func WithTwoOptMaxIters(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.TwoOptMaxIters = n
	}
}

// Result is a tour over matrix indices.
//
// Order starts at 0 and lists every index once; a closed tour repeats 0 at
// the end (len == n+1). Exact reports whether Held–Karp produced it.
type Result struct {
	Order []int
	Cost  int64
	Exact bool
}
