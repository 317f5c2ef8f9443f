package dijkstra_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campusmap"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
	"github.com/katalvlaran/campusnav/dijkstra"
)

type pairAnswer struct {
	shortest *dijkstra.Result
	all      []core.Path
}

// TestConcurrentSearchesMatchSequential runs shortest-path and all-path
// searches from many goroutines over one shared campus graph and checks
// every answer against a single-threaded run.
func TestConcurrentSearchesMatchSequential(t *testing.T) {
	g, err := campusmap.Default().Build()
	require.NoError(t, err)

	ids := g.Vertices()
	solve := func(from, to string) (pairAnswer, error) {
		res, err := dijkstra.ShortestPath(g, from, to)
		if err != nil {
			return pairAnswer{}, err
		}
		paths, err := dfs.AllPaths(g, from, to, dfs.WithMaxLength(10))
		if err != nil {
			return pairAnswer{}, err
		}
		return pairAnswer{shortest: res, all: paths}, nil
	}

	want := make(map[[2]string]pairAnswer)
	for _, from := range ids {
		for _, to := range ids {
			ans, err := solve(from, to)
			require.NoError(t, err, "%s->%s", from, to)
			want[[2]string{from, to}] = ans
		}
	}
	require.Equal(t, int64(625), want[[2]string{"1", "8"}].shortest.Distance)
	require.Len(t, want[[2]string{"1", "3"}].all, 6)

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	got := make([]map[[2]string]pairAnswer, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make(map[[2]string]pairAnswer, len(want))
			// Stagger the start so workers hit different pairs at once.
			for i := range ids {
				from := ids[(i+w)%len(ids)]
				for _, to := range ids {
					ans, err := solve(from, to)
					if err != nil {
						errs <- err
						return
					}
					out[[2]string{from, to}] = ans
				}
			}
			got[w] = out
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent search: %v", err)
	}
	for w, out := range got {
		assert.Equal(t, want, out, "worker %d", w)
	}
}
