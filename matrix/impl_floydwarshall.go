// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) with deterministic loop order.
//
// Contract:
//   - Inf means "no path"; the diagonal is 0 before calling.

package matrix

// FloydWarshall closes m in place so that every entry is a shortest distance.
//
// Loop order is fixed (k → i → j) and only strict improvements are written,
// so the result does not depend on anything but m.
// Inf entries are skipped, never added, so sums cannot overflow through them.
//
// Time O(n³), extra space O(1).
func FloydWarshall(m *Dense) {
	n, data := m.n, m.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Inf {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Inf || kj > Inf-ik {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
