// SPDX-License-Identifier: MIT
//
// File: campusmap.go
// Role: decode, validate and build a catalog into a core.Graph.

package campusmap

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/core"
)

//go:embed campus.yaml
var defaultCampus []byte

// Default returns the built-in reference campus.
func Default() *Map {
	m, err := Load(bytes.NewReader(defaultCampus))
	if err != nil {
		panic(fmt.Sprintf("campusmap: embedded catalog is invalid: %v", err))
	}

	return m
}

// Load decodes and validates a YAML catalog. Unknown fields are rejected.
func Load(r io.Reader) (*Map, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Map
	if err := dec.Decode(&m); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "campusmap: decode")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "campusmap")
	}
	defer f.Close()

	return Load(f)
}

// Validate checks IDs, endpoints, duplicates and signs without building a graph.
func (m *Map) Validate() error {
	seen := make(map[string]struct{}, len(m.Locations))
	for i, l := range m.Locations {
		if l.ID == "" {
			return errors.Wrapf(ErrEmptyID, "locations[%d]", i)
		}
		if _, dup := seen[l.ID]; dup {
			return errors.Wrapf(ErrDuplicateLocation, "locations[%d] %q", i, l.ID)
		}
		seen[l.ID] = struct{}{}
	}

	type pair struct{ a, b string }
	paths := make(map[pair]struct{}, len(m.Paths))
	for i, p := range m.Paths {
		for _, end := range []string{p.From, p.To} {
			if _, ok := seen[end]; !ok {
				return errors.Wrapf(ErrUnknownEndpoint, "paths[%d] %q", i, end)
			}
		}
		if p.Distance < 0 || p.Time < 0 {
			return errors.Wrapf(ErrNegativeDistance, "paths[%d] %s-%s", i, p.From, p.To)
		}
		k := pair{p.From, p.To}
		if k.a > k.b {
			k.a, k.b = k.b, k.a
		}
		if _, dup := paths[k]; dup {
			return errors.Wrapf(ErrDuplicatePath, "paths[%d] %s-%s", i, p.From, p.To)
		}
		paths[k] = struct{}{}
	}

	return nil
}

// Build validates the catalog and returns a graph with every location added
// before any path, both in catalog order.
func (m *Map) Build(opts ...core.GraphOption) (*core.Graph, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	opts = append([]core.GraphOption{core.WithCapacity(len(m.Locations))}, opts...)
	g := core.NewGraph(opts...)
	for _, l := range m.Locations {
		var lopts []core.LocationOption
		if l.Type != "" {
			lopts = append(lopts, core.WithKind(l.Type))
		}
		if l.Lat != nil && l.Lng != nil {
			lopts = append(lopts, core.WithCoordinates(*l.Lat, *l.Lng))
		}
		if err := g.AddVertex(l.ID, l.Name, lopts...); err != nil {
			return nil, errors.Wrapf(err, "campusmap: location %q", l.ID)
		}
	}
	for _, p := range m.Paths {
		if err := g.AddEdge(p.From, p.To, p.Distance, core.WithTime(p.Time)); err != nil {
			return nil, errors.Wrapf(err, "campusmap: path %s-%s", p.From, p.To)
		}
	}

	return g, nil
}
