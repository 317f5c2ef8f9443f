// SPDX-License-Identifier: MIT
//
// Package route defines the presentation types for a computed campus route.
package route

import "github.com/katalvlaran/campusnav/core"

// DetailSource is the read surface Present needs from a graph.
// *core.Graph satisfies it.
type DetailSource interface {
	Detail(a, b string) (core.Detail, bool)
	LocationName(id string) string
}

// Locator is implemented by sources that can resolve full locations.
// WithPolyline uses it to collect coordinates.
type Locator interface {
	Location(id string) (core.Location, error)
}

// Step is one leg of a route.
type Step struct {
	From     string `json:"from"`
	To       string `json:"to"`
	FromName string `json:"from_name"`
	ToName   string `json:"to_name"`
	Distance int64  `json:"distance"`
	Time     int64  `json:"time"`
}

// Result is a path annotated for display.
//
// TotalDistance is taken from the path itself; StepDistance recomputes it
// from the per-step details so the two can be compared.
type Result struct {
	Path          []string `json:"path"`
	Names         []string `json:"names"`
	TotalDistance int64    `json:"total_distance"`
	TotalTime     int64    `json:"total_time"`
	StepCount     int      `json:"step_count"`
	Steps         []Step   `json:"steps"`
	Polyline      string   `json:"polyline,omitempty"`
}

// Options configures Present.
type Options struct {
	// Polyline requests an encoded polyline when every node has coordinates.
	Polyline bool
}

// Option is a functional option for Present.
type Option func(*Options)

// WithPolyline requests Result.Polyline. The source must implement Locator.
func WithPolyline() Option {
	return func(o *Options) { o.Polyline = true }
}

// DefaultOptions returns Options with no polyline.
func DefaultOptions() Options {
	return Options{}
}
