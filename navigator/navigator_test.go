package navigator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/campusnav/campusmap"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/navigator"
)

func campus(t testing.TB, opts ...navigator.Option) *navigator.Navigator {
	t.Helper()
	g, err := campusmap.Default().Build()
	require.NoError(t, err)

	return navigator.New(g, opts...)
}

// islands has two connected pairs with no link between them.
func islands(t testing.TB, opts ...navigator.Option) *navigator.Navigator {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddVertex(id, id))
	}
	require.NoError(t, g.AddEdge("a", "b", 5))
	require.NoError(t, g.AddEdge("c", "d", 5))

	return navigator.New(g, opts...)
}

func TestComputeShortestPath(t *testing.T) {
	nav := campus(t)

	r, err := nav.ComputeShortestPath(context.Background(), "1", "8")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "7", "5", "4", "6", "8"}, r.Path)
	assert.Equal(t, int64(625), r.TotalDistance)
	assert.Equal(t, int64(500), r.TotalTime)
	assert.Equal(t, "8 min 20 sec", r.Duration)
	assert.Equal(t, 5, r.StepCount)
	assert.True(t, r.Shortest)
	assert.Equal(t, 1, r.Rank)
	assert.True(t, r.Consistent())
	assert.NotEmpty(t, r.Polyline)
	assert.Contains(t, r.MapsURL, "29.375481,79.530486")
	assert.Equal(t, "Main Gate → Main Auditorium → Administration Block → Computer Science Lab → Sports Complex → Hostel Block A", r.Summary())
}

func TestComputeShortestPath_SameLocation(t *testing.T) {
	r, err := campus(t).ComputeShortestPath(context.Background(), "3", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, r.Path)
	assert.Zero(t, r.TotalDistance)
	assert.Zero(t, r.StepCount)
}

func TestComputeShortestPath_UnknownLocation(t *testing.T) {
	nav := campus(t)

	_, err := nav.ComputeShortestPath(context.Background(), "1", "99")
	assert.ErrorIs(t, err, navigator.ErrLocationNotFound)
	assert.NotErrorIs(t, err, navigator.ErrNoRoute)

	_, err = nav.ComputeShortestPath(context.Background(), "", "1")
	assert.ErrorIs(t, err, navigator.ErrLocationNotFound)
}

func TestComputeShortestPath_NoRoute(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	nav := islands(t, navigator.WithLogger(zap.New(obs)))

	_, err := nav.ComputeShortestPath(context.Background(), "a", "d")
	assert.ErrorIs(t, err, navigator.ErrNoRoute)
	assert.NotErrorIs(t, err, navigator.ErrLocationNotFound)

	entries := logs.FilterMessage("no route").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].ContextMap()["from"])
}

func TestComputeShortestPath_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := campus(t).ComputeShortestPath(ctx, "1", "8")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputeAllPaths(t *testing.T) {
	routes, err := campus(t).ComputeAllPaths(context.Background(), "1", "3", 0)
	require.NoError(t, err)
	require.Len(t, routes, 6)

	assert.Equal(t, []string{"1", "7", "3"}, routes[0].Path)
	assert.Equal(t, int64(210), routes[0].TotalDistance)
	assert.True(t, routes[0].Shortest)
	for i, r := range routes {
		assert.Equal(t, i+1, r.Rank)
		assert.Equal(t, i == 0, r.Shortest)
		assert.True(t, r.Consistent())
		if i > 0 {
			assert.LessOrEqual(t, routes[i-1].TotalDistance, r.TotalDistance)
		}
	}
}

func TestComputeAllPaths_MatchesShortest(t *testing.T) {
	nav := campus(t)
	ids := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	for _, from := range ids {
		for _, to := range ids {
			best, err := nav.ComputeShortestPath(context.Background(), from, to)
			require.NoError(t, err)
			all, err := nav.ComputeAllPaths(context.Background(), from, to, len(ids))
			require.NoError(t, err)
			assert.Equal(t, best.TotalDistance, all[0].TotalDistance, "%s→%s", from, to)
		}
	}
}

func TestComputeAllPaths_DepthError(t *testing.T) {
	nav := campus(t)

	empty, err := nav.ComputeAllPaths(context.Background(), "1", "8", 4)
	require.ErrorIs(t, err, navigator.ErrNoRoute)
	assert.Nil(t, empty)

	var de *navigator.DepthError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 4, de.MaxDepth)
	assert.Equal(t, 5, de.Required)

	routes, err := nav.ComputeAllPaths(context.Background(), "1", "8", de.Required)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "6", "8"}, routes[0].Path)
}

func TestComputeAllPaths_NoDirectEdgeDepthOne(t *testing.T) {
	_, err := campus(t).ComputeAllPaths(context.Background(), "1", "3", 1)
	var de *navigator.DepthError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 3, de.Required)
}

func TestComputeAllPaths_Unreachable(t *testing.T) {
	routes, err := islands(t).ComputeAllPaths(context.Background(), "a", "c", 0)
	assert.ErrorIs(t, err, navigator.ErrNoRoute)
	assert.Nil(t, routes)

	var de *navigator.DepthError
	assert.False(t, errors.As(err, &de))
}

func TestComputeAllPaths_DefaultDepthOption(t *testing.T) {
	nav := campus(t, navigator.WithMaxDepth(3))
	assert.Equal(t, 3, nav.MaxDepth())

	routes, err := nav.ComputeAllPaths(context.Background(), "1", "3", 0)
	require.NoError(t, err)
	assert.Len(t, routes, 2)
}

func TestComputeBestPaths(t *testing.T) {
	routes, err := campus(t).ComputeBestPaths(context.Background(), "1", "3", 0, 2)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, int64(210), routes[0].TotalDistance)
	assert.Equal(t, int64(270), routes[1].TotalDistance)
}

func TestLocationLookups(t *testing.T) {
	nav := campus(t)

	assert.Len(t, nav.Locations(), 8)

	l, err := nav.Location("6")
	require.NoError(t, err)
	assert.Equal(t, "Sports Complex", l.Name)
	assert.Equal(t, "Sports Facility", l.Kind)

	_, err = nav.Location("42")
	assert.ErrorIs(t, err, navigator.ErrLocationNotFound)

	assert.Equal(t, "Hostel Block A", nav.LocationName("8"))
	assert.Equal(t, core.UnknownLocation, nav.LocationName("42"))
}

func TestPathDetail(t *testing.T) {
	nav := campus(t)

	d, ok := nav.PathDetail("2", "1")
	require.True(t, ok)
	assert.Equal(t, core.Detail{Distance: 150, Time: 120}, d)

	d, ok = nav.PathDetail("1", "3")
	assert.False(t, ok)
	assert.Zero(t, d)
}

func TestNearest(t *testing.T) {
	l, dist, err := campus(t).Nearest(29.375160, 79.530940)
	require.NoError(t, err)
	assert.Equal(t, "7", l.ID)
	assert.Less(t, dist, 5.0)

	_, _, err = islands(t).Nearest(0, 0)
	assert.Error(t, err)
}

func TestPresentRoute(t *testing.T) {
	res := campus(t).PresentRoute(core.Path{Nodes: []string{"1", "2", "3"}, Distance: 270})
	assert.Equal(t, int64(216), res.TotalTime)
	assert.Equal(t, "Main Gate → Central Library → Student Cafeteria", res.Summary())
}
