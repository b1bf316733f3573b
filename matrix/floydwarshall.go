// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) over an adjacency
//     matrix, with a deterministic loop order.
//
// Contract:
//   - Square input; 0 off the diagonal means "no edge"; the diagonal is
//     ignored (distance to self is 0).
//   - Output cells hold the caller's "no path" sentinel when unreachable.

package matrix

import "fmt"

const opFloydWarshall = "FloydWarshall"

// FloydWarshall returns a new matrix of all-pairs shortest distances over the
// adjacency matrix adj. Unreachable pairs hold inf; sums that would reach or
// pass inf saturate to inf. adj is not modified.
//
// Loop order is fixed (k → i → j) and only strict improvements are stored.
// Complexity: Time O(n³), extra space O(n²) for the result.
func FloydWarshall(adj *Dense, inf int64) (*Dense, error) {
	if !adj.IsSquare() {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, adj.r, adj.c, ErrNonSquare)
	}

	// 1) Initialize: diagonal 0, missing edges inf.
	d := adj.Clone()
	n := d.r
	data := d.data
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				data[i*n+j] = 0
			case data[i*n+j] == 0:
				data[i*n+j] = inf
			}
		}
	}

	// 2) Closure.
	var ik, kj, cand int64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == inf {
				continue
			}
			for j = 0; j < n; j++ {
				kj = data[k*n+j]
				if kj == inf || kj >= inf-ik {
					continue
				}
				if cand = ik + kj; cand < data[i*n+j] {
					data[i*n+j] = cand
				}
			}
		}
	}

	return d, nil
}
