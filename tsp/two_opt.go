// File: two_opt.go
// Role: nearest-neighbour construction and 2-opt local search.
//
// TwoOpt performs deterministic first-improvement 2-opt on a tour whose first
// stop is fixed at 0. Reversing segment [i..k] replaces edges (a,b),(c,d) with
// (a,c),(b,d), where a=T[i−1], b=T[i], c=T[k], d=T[k+1]. In an open tour the
// last stop has no successor, so a move ending there only swaps (a,b) for (a,c).
// Distances are assumed symmetric.

package tsp

import "github.com/katalvlaran/campusnav/matrix"

// NearestNeighbor builds a tour greedily from stop 0, always moving to the
// closest unvisited stop (lowest index on ties, unreachable stops last).
func NearestNeighbor(dist *matrix.Dense, closed bool) ([]int, error) {
	w, n, err := prefetch(dist)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, n)
	tour := make([]int, 1, n+1)
	visited[0] = true
	for cur := 0; len(tour) < n; {
		next, best := -1, matrix.Inf
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if next < 0 || w[cur*n+j] < best {
				next, best = j, w[cur*n+j]
			}
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}
	if closed {
		tour = append(tour, 0)
	}

	return tour, nil
}

// TwoOpt improves init by 2-opt moves until no move helps or maxIters moves
// were accepted (0 = unlimited). It returns the improved tour and its cost.
func TwoOpt(dist *matrix.Dense, init []int, closed bool, maxIters int) ([]int, int64, error) {
	w, n, err := prefetch(dist)
	if err != nil {
		return nil, 0, err
	}
	at := func(u, v int) int64 { return w[u*n+v] }

	cur := append([]int(nil), init...)
	last := len(cur) - 1 // index of the last movable position
	if closed {
		last--
	}

	for accepted := 0; maxIters == 0 || accepted < maxIters; {
		improved := false
		for i := 1; i < last && !improved; i++ {
			for k := i + 1; k <= last; k++ {
				a, b, c := cur[i-1], cur[i], cur[k]
				var before, after int64
				if k+1 < len(cur) {
					d := cur[k+1]
					before = add(at(a, b), at(c, d))
					after = add(at(a, c), at(b, d))
				} else {
					before, after = at(a, b), at(a, c)
				}
				if after < before {
					reverse(cur[i : k+1])
					improved = true
					accepted++
					break
				}
			}
		}
		if !improved {
			break
		}
	}

	return cur, tourCost(w, n, cur), nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func tourCost(w []int64, n int, tour []int) int64 {
	var cost int64
	for i := 0; i+1 < len(tour); i++ {
		cost = add(cost, w[tour[i]*n+tour[i+1]])
	}

	return cost
}
