package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
)

// Common location IDs used across core tests.
const (
	MainGate  = "1"
	Library   = "2"
	Cafeteria = "3"
	Isolated  = "9"
)

// buildTriangle returns Main Gate-Library-Cafeteria plus an isolated location:
//
//	1 ──150── 2 ──120── 3        9
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(MainGate, "Main Gate"))
	require.NoError(t, g.AddVertex(Library, "Library"))
	require.NoError(t, g.AddVertex(Cafeteria, "Cafeteria"))
	require.NoError(t, g.AddVertex(Isolated, "Observatory"))
	require.NoError(t, g.AddEdge(MainGate, Library, 150, core.WithTime(120)))
	require.NoError(t, g.AddEdge(Library, Cafeteria, 120, core.WithTime(96)))

	return g
}
