// SPDX-License-Identifier: MIT
//
// Package campusmap defines the on-disk catalog format and its errors.
package campusmap

import "errors"

// Sentinel errors for catalog validation.
var (
	// ErrDuplicateLocation indicates two locations share an ID.
	ErrDuplicateLocation = errors.New("campusmap: duplicate location id")

	// ErrUnknownEndpoint indicates a path referencing a location not in the catalog.
	ErrUnknownEndpoint = errors.New("campusmap: path endpoint not found")

	// ErrNegativeDistance indicates a path with a negative distance or time.
	ErrNegativeDistance = errors.New("campusmap: negative distance or time")

	// ErrEmptyID indicates a location without an ID.
	ErrEmptyID = errors.New("campusmap: location id is empty")

	// ErrDuplicatePath indicates a second path between the same pair of locations.
	ErrDuplicatePath = errors.New("campusmap: duplicate path")
)

// Location is one catalog entry. Lat and Lng are optional; both must be
// present for the location to carry coordinates.
type Location struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Type string   `yaml:"type"`
	Lat  *float64 `yaml:"lat"`
	Lng  *float64 `yaml:"lng"`
}

// Path is an undirected walkway. Distance is metres, Time is seconds.
type Path struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
	Time     int64  `yaml:"time"`
}

// Map is a parsed catalog.
type Map struct {
	Locations []Location `yaml:"locations"`
	Paths     []Path     `yaml:"paths"`
}
