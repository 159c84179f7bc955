// SPDX-License-Identifier: MIT

package vine

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PseudoObs maps every column of x to its ranks divided by n+1, so the
// result lies strictly inside (0,1) and can be passed to Select. Tied values
// share their average rank. NaN entries are not supported.
//
// Complexity: O(d·n log n).
func PseudoObs(x mat.Matrix) *mat.Dense {
	n, d := x.Dims()
	out := mat.NewDense(n, d, nil)
	col := make([]float64, n)
	idx := make([]int, n)
	scale := 1 / float64(n+1)

	for j := 0; j < d; j++ {
		mat.Col(col, j, x)
		floats.Argsort(col, idx)
		for i := 0; i < n; {
			k := i
			for k+1 < n && col[k+1] == col[i] {
				k++
			}
			rank := float64(i+k+2) / 2 // mean of ranks i+1 … k+1
			for m := i; m <= k; m++ {
				out.Set(idx[m], j, rank*scale)
			}
			i = k + 1
		}
	}

	return out
}
