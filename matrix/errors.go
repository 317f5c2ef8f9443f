// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested order is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// At and Set return it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates a location ID that is not in the table's index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrNegativeWeight indicates a negative entry where distances are required.
	ErrNegativeWeight = errors.New("matrix: negative weight")
)
