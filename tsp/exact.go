package tsp

import "github.com/katalvlaran/campusnav/matrix"

// Exact orders the stops optimally with the Held–Karp dynamic program.
//
// dp[mask][j] is the cheapest walk that starts at 0, visits exactly the stops
// in mask and ends at j. An open tour takes the best dp[all][j]; a closed tour
// adds the way back to 0. Ties keep the lowest predecessor index.
//
// Time O(n²·2ⁿ), memory O(n·2ⁿ).
func Exact(dist *matrix.Dense, closed bool) (Result, error) {
	w, n, err := prefetch(dist)
	if err != nil {
		return Result{}, err
	}
	if n == 1 {
		return trivial(closed), nil
	}

	full := 1<<n - 1
	dp := make([]int64, (full+1)*n)
	parent := make([]int8, (full+1)*n)
	for i := range dp {
		dp[i] = matrix.Inf
		parent[i] = -1
	}
	dp[1*n+0] = 0

	for mask := 1; mask <= full; mask += 2 { // masks containing stop 0
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ 1<<j
			best, from := matrix.Inf, -1
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				if c := add(dp[prev*n+k], w[k*n+j]); c < best {
					best, from = c, k
				}
			}
			dp[mask*n+j] = best
			parent[mask*n+j] = int8(from)
		}
	}

	bestCost, last := matrix.Inf, -1
	for j := 1; j < n; j++ {
		c := dp[full*n+j]
		if closed {
			c = add(c, w[j*n])
		}
		if c < bestCost {
			bestCost, last = c, j
		}
	}
	if last < 0 {
		return Result{}, ErrIncompleteGraph
	}

	order := make([]int, n, n+1)
	for mask, j, i := full, last, n-1; i >= 1; i-- {
		order[i] = j
		p := int(parent[mask*n+j])
		mask ^= 1 << j
		j = p
	}
	if closed {
		order = append(order, 0)
	}

	return Result{Order: order, Cost: bestCost, Exact: true}, nil
}

func trivial(closed bool) Result {
	if closed {
		return Result{Order: []int{0, 0}, Exact: true}
	}

	return Result{Order: []int{0}, Exact: true}
}

// prefetch copies dist into a flat row-major buffer for the hot loops.
func prefetch(dist *matrix.Dense) ([]int64, int, error) {
	if dist == nil || dist.Order() == 0 {
		return nil, 0, ErrEmpty
	}
	n := dist.Order()
	w := make([]int64, 0, n*n)
	for i := 0; i < n; i++ {
		row, err := dist.Row(i)
		if err != nil {
			return nil, 0, err
		}
		w = append(w, row...)
	}

	return w, n, nil
}

// add sums two distances, saturating at matrix.Inf.
func add(a, b int64) int64 {
	if a == matrix.Inf || b == matrix.Inf || a > matrix.Inf-b {
		return matrix.Inf
	}

	return a + b
}
