// SPDX-License-Identifier: MIT
//
// Package navigator defines the errors, options and route type of the
// campus navigation facade.
package navigator

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/dfs"
	"github.com/katalvlaran/campusnav/route"
)

var (
	// ErrLocationNotFound indicates a start or destination ID that is not on the map.
	ErrLocationNotFound = errors.New("navigator: location not found")

	// ErrNoRoute indicates two known locations with no connecting route.
	ErrNoRoute = errors.New("navigator: no route found")

	// ErrNoStops indicates a tour request without any stop.
	ErrNoStops = errors.New("navigator: tour needs at least one stop")

	// ErrDisconnected indicates that some location cannot be reached at all,
	// so no backbone spans the campus.
	ErrDisconnected = errors.New("navigator: campus map is not connected")
)

// DepthError is returned by route enumeration when the destination is
// reachable but every route is longer than the node bound. It matches
// ErrNoRoute under errors.Is.
type DepthError struct {
	MaxDepth int // bound that was applied
	Required int // smallest bound that yields at least one route
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("navigator: no route within %d locations; at least %d needed", e.MaxDepth, e.Required)
}

// Unwrap lets errors.Is(err, ErrNoRoute) hold.
func (e *DepthError) Unwrap() error { return ErrNoRoute }

// Route is one presented route option.
type Route struct {
	route.Result
	// Rank is the 1-based position among the options; rank 1 is the cheapest.
	Rank int `json:"rank"`
	// Shortest marks the cheapest option.
	Shortest bool `json:"shortest"`
	// Duration is the formatted total walking time.
	Duration string `json:"duration"`
	// MapsURL is a walking-directions link between the endpoints, if known.
	MapsURL string `json:"maps_url,omitempty"`
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.log = l
		}
	}
}

// WithMaxDepth sets the default node bound for route enumeration.
// Values below 1 are ignored.
func WithMaxDepth(d int) Option {
	return func(n *Navigator) {
		if d >= 1 {
			n.maxDepth = d
		}
	}
}

// DefaultMaxDepth is the enumeration bound used when none is configured.
const DefaultMaxDepth = dfs.DefaultMaxLength
