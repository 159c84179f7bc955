// SPDX-License-Identifier: MIT

package vine

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Minimum data shape.
const (
	minVariables    = 2
	minObservations = 2
)

// checkData validates an n×d matrix of pseudo-observations and returns its
// dimensions. Entries are scanned row by row; the first offending entry is
// reported.
func checkData(data mat.Matrix) (n, d int, err error) {
	if data == nil {
		return 0, 0, inputErr(ErrNilData)
	}
	n, d = data.Dims()
	if d < minVariables {
		return n, d, inputErr(ErrTooFewVariables)
	}
	if n < minObservations {
		return n, d, inputErr(ErrTooFewObservations)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			v := data.At(i, j)
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return n, d, &InputError{Row: i, Col: j, Value: v, Err: ErrNotFinite}
			case v <= 0 || v >= 1:
				return n, d, &InputError{Row: i, Col: j, Value: v, Err: ErrOutOfUnitInterval}
			}
		}
	}

	return n, d, nil
}
