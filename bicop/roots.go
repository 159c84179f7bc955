// SPDX-License-Identifier: MIT

package bicop

import "math"

// Bisect finds a root of f in [lo, hi] by bisection and returns the midpoint
// of the final bracket.
//
// If f(lo) and f(hi) share a sign there is no bracketed root; the endpoint
// with the smaller |f| is returned. That is what the callers want: a tau
// beyond the family's range maps to the boundary parameter.
//
// Complexity: at most maxIter evaluations of f after the two endpoint calls.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) float64 {
	flo := f(lo)
	if flo == 0 {
		return lo
	}
	fhi := f(hi)
	if fhi == 0 {
		return hi
	}
	if (flo > 0) == (fhi > 0) {
		if math.Abs(flo) <= math.Abs(fhi) {
			return lo
		}
		return hi
	}

	for i := 0; i < maxIter && hi-lo > tol; i++ {
		mid := lo + (hi-lo)/2
		fm := f(mid)
		if fm == 0 {
			return mid
		}
		if (fm > 0) == (flo > 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}

	return lo + (hi-lo)/2
}
