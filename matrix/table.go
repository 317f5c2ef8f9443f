// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: all-pairs distance table over a core.Graph, addressed by location ID.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Table is a closed distance matrix plus the ID ↔ index mapping.
// It is immutable after construction and safe for concurrent reads.
type Table struct {
	ids   []string
	index map[string]int
	dist  *Dense
}

// DistanceTable builds the all-pairs shortest distance table of g.
// Rows and columns follow g.Vertices() (insertion order).
//
// Complexity: O(V³) time, O(V²) memory. Intended for campus-sized maps.
func DistanceTable(g *core.Graph) (*Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	t := &Table{ids: ids, index: make(map[string]int, len(ids))}
	for i, id := range ids {
		t.index[id] = i
	}
	if len(ids) == 0 {
		return t, nil
	}

	d, err := NewDense(len(ids))
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		i, j := t.index[e.From], t.index[e.To]
		if i == j {
			continue
		}
		if e.Distance < d.data[i*d.n+j] {
			d.data[i*d.n+j] = e.Distance
			d.data[j*d.n+i] = e.Distance
		}
	}
	FloydWarshall(d)
	t.dist = d

	return t, nil
}

// IDs returns the row/column order.
func (t *Table) IDs() []string { return append([]string(nil), t.ids...) }

// Len returns the number of locations.
func (t *Table) Len() int { return len(t.ids) }

// Distance returns the shortest distance between two locations.
// ok is false when either ID is unknown or b is unreachable from a.
func (t *Table) Distance(a, b string) (int64, bool) {
	i, okA := t.index[a]
	j, okB := t.index[b]
	if !okA || !okB {
		return 0, false
	}
	v := t.dist.data[i*t.dist.n+j]

	return v, v != Inf
}

// Sub extracts the square sub-matrix for ids, in the given order.
func (t *Table) Sub(ids []string) (*Dense, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("Table.Sub: %w", ErrBadShape)
	}
	sub, err := NewDense(len(ids))
	if err != nil {
		return nil, err
	}
	rows := make([]int, len(ids))
	for k, id := range ids {
		i, ok := t.index[id]
		if !ok {
			return nil, fmt.Errorf("Table.Sub: %w: %q", ErrUnknownVertex, id)
		}
		rows[k] = i
	}
	for a, i := range rows {
		for b, j := range rows {
			sub.data[a*sub.n+b] = t.dist.data[i*t.dist.n+j]
		}
	}

	return sub, nil
}

// Rows returns the table as ID → ID → distance, omitting unreachable pairs.
func (t *Table) Rows() map[string]map[string]int64 {
	out := make(map[string]map[string]int64, len(t.ids))
	for i, a := range t.ids {
		row := make(map[string]int64, len(t.ids))
		for j, b := range t.ids {
			if v := t.dist.data[i*t.dist.n+j]; v != Inf {
				row[b] = v
			}
		}
		out[a] = row
	}

	return out
}
