package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campusmap"
	"github.com/katalvlaran/campusnav/matrix"
	"github.com/katalvlaran/campusnav/tsp"
)

// dense builds a symmetric matrix from an upper-triangular weight list.
func dense(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(len(rows))
	require.NoError(t, err)
	for i := range rows {
		for j := range rows[i] {
			if i != j {
				require.NoError(t, d.Set(i, j, rows[i][j]))
			}
		}
	}

	return d
}

func campusSub(t *testing.T, ids ...string) *matrix.Dense {
	t.Helper()
	g, err := campusmap.Default().Build()
	require.NoError(t, err)
	tbl, err := matrix.DistanceTable(g)
	require.NoError(t, err)
	sub, err := tbl.Sub(ids)
	require.NoError(t, err)

	return sub
}

func assertPermutation(t *testing.T, order []int, n int, closed bool) {
	t.Helper()
	want := n
	if closed {
		want++
		assert.Equal(t, 0, order[len(order)-1])
	}
	require.Len(t, order, want)
	assert.Equal(t, 0, order[0])
	seen := make(map[int]bool, n)
	for _, v := range order[:n] {
		assert.False(t, seen[v], "stop %d repeated", v)
		seen[v] = true
	}
	assert.Len(t, seen, n)
}

// bruteForce returns the optimal cost by trying every order of 1..n-1.
func bruteForce(d *matrix.Dense, closed bool) int64 {
	n := d.Order()
	rest := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, i)
	}
	best := matrix.Inf
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			order := append([]int{0}, rest...)
			if closed {
				order = append(order, 0)
			}
			var c int64
			for i := 0; i+1 < len(order); i++ {
				w, _ := d.At(order[i], order[i+1])
				if w == matrix.Inf {
					return
				}
				c += w
			}
			if c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

func randomSymmetric(t testing.TB, rng *rand.Rand, n int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := int64(1 + rng.Intn(500))
			require.NoError(t, d.Set(i, j, w))
			require.NoError(t, d.Set(j, i, w))
		}
	}

	return d
}

func TestSolve_Errors(t *testing.T) {
	_, err := tsp.Solve(nil)
	assert.ErrorIs(t, err, tsp.ErrEmpty)

	d := dense(t, [][]int64{{0, 1}, {1, 0}})
	_, err = tsp.Solve(d, tsp.WithMaxExact(-1))
	assert.ErrorIs(t, err, tsp.ErrOptionViolation)
	_, err = tsp.Solve(d, tsp.WithTwoOptMaxIters(-1))
	assert.ErrorIs(t, err, tsp.ErrOptionViolation)
}

func TestSolve_SingleStop(t *testing.T) {
	d, err := matrix.NewDense(1)
	require.NoError(t, err)

	res, err := tsp.Solve(d)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Zero(t, res.Cost)

	res, err = tsp.Solve(d, tsp.WithClosed())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, res.Order)
}

func TestSolve_CampusOpen(t *testing.T) {
	// Gate, Library, Hostel: 1→3→8 costs 210+535, 1→8→3 costs 625+535.
	sub := campusSub(t, "1", "8", "3")

	res, err := tsp.Solve(sub)
	require.NoError(t, err)
	assert.True(t, res.Exact)
	assert.Equal(t, []int{0, 2, 1}, res.Order)
	assert.Equal(t, int64(745), res.Cost)
}

func TestSolve_CampusClosed(t *testing.T) {
	sub := campusSub(t, "1", "2", "3", "4", "5", "6", "7", "8")

	res, err := tsp.Solve(sub, tsp.WithClosed())
	require.NoError(t, err)
	assertPermutation(t, res.Order, 8, true)
	assert.Equal(t, bruteForce(sub, true), res.Cost)
}

func TestExact_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 2; n <= 7; n++ {
		d := randomSymmetric(t, rng, n)
		for _, closed := range []bool{false, true} {
			res, err := tsp.Exact(d, closed)
			require.NoError(t, err)
			assertPermutation(t, res.Order, n, closed)
			assert.Equal(t, bruteForce(d, closed), res.Cost, "n=%d closed=%v", n, closed)
		}
	}
}

func TestExact_Disconnected(t *testing.T) {
	d, err := matrix.NewDense(3)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 1, 5))
	require.NoError(t, d.Set(1, 0, 5))

	_, err = tsp.Exact(d, false)
	assert.ErrorIs(t, err, tsp.ErrIncompleteGraph)
	_, err = tsp.Solve(d, tsp.WithMaxExact(0))
	assert.ErrorIs(t, err, tsp.ErrIncompleteGraph)
}

func TestHeuristic_ValidAndNotBetterThanExact(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 5; trial++ {
		d := randomSymmetric(t, rng, 9)
		for _, closed := range []bool{false, true} {
			opts := []tsp.Option{tsp.WithMaxExact(0)}
			if closed {
				opts = append(opts, tsp.WithClosed())
			}
			h, err := tsp.Solve(d, opts...)
			require.NoError(t, err)
			assert.False(t, h.Exact)
			assertPermutation(t, h.Order, 9, closed)

			e, err := tsp.Exact(d, closed)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, h.Cost, e.Cost)
		}
	}
}

func TestTwoOpt_UntanglesCrossing(t *testing.T) {
	// Unit square corners 0,1,2,3 with diagonals of 14: 0→2→1→3→0 crosses itself.
	d := dense(t, [][]int64{
		{0, 10, 14, 10},
		{10, 0, 10, 14},
		{14, 10, 0, 10},
		{10, 14, 10, 0},
	})

	tour, cost, err := tsp.TwoOpt(d, []int{0, 2, 1, 3, 0}, true, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(40), cost)
	assertPermutation(t, tour, 4, true)
}

func TestNearestNeighbor(t *testing.T) {
	d := dense(t, [][]int64{
		{0, 3, 1, 9},
		{3, 0, 2, 4},
		{1, 2, 0, 8},
		{9, 4, 8, 0},
	})

	tour, err := tsp.NearestNeighbor(d, false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, tour)
}
