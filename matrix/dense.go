// SPDX-License-Identifier: MIT
// Package matrix provides the square distance matrix used for all-pairs
// campus distances. Dense stores int64 entries row-major in one flat slice.

package matrix

import (
	"fmt"
	"math"
)

// Inf is the "no path" entry. It never takes part in an addition.
const Inf int64 = math.MaxInt64

// Dense is an n×n row-major matrix of int64 distances.
type Dense struct {
	n    int
	data []int64
}

// NewDense creates an n×n matrix with a zero diagonal and Inf elsewhere.
// Complexity: O(n²).
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}
	d := &Dense{n: n, data: make([]int64, n*n)}
	for i := range d.data {
		if i/n != i%n {
			d.data[i] = Inf
		}
	}

	return d, nil
}

// Order returns n.
func (m *Dense) Order() int { return m.n }

func (m *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.n, m.n, ErrOutOfRange)
	}

	return i*m.n + j, nil
}

// At returns entry (i, j).
func (m *Dense) At(i, j int) (int64, error) {
	k, err := m.indexOf(i, j)
	if err != nil {
		return 0, fmt.Errorf("Dense.At%w", err)
	}

	return m.data[k], nil
}

// Set writes entry (i, j). Negative values are rejected.
func (m *Dense) Set(i, j int, v int64) error {
	k, err := m.indexOf(i, j)
	if err != nil {
		return fmt.Errorf("Dense.Set%w", err)
	}
	if v < 0 {
		return fmt.Errorf("Dense.Set(%d,%d)=%d: %w", i, j, v, ErrNegativeWeight)
	}
	m.data[k] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int64, error) {
	if _, err := m.indexOf(i, 0); err != nil {
		return nil, fmt.Errorf("Dense.Row%w", err)
	}

	return append([]int64(nil), m.data[i*m.n:(i+1)*m.n]...), nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{n: m.n, data: append([]int64(nil), m.data...)}
}
