// SPDX-License-Identifier: MIT

package ktau

import (
	"math"
	"sort"
)

// Tau returns Kendall's tau-b of x and y.
// Invalid input (length mismatch, n < 2) and degenerate samples yield 0.
// Use TauDetailed to tell those cases apart.
//
// Complexity: O(n log n) time, O(n) memory.
func Tau(x, y []float64) float64 {
	r, err := TauDetailed(x, y)
	if err != nil {
		return 0
	}

	return r.Tau
}

// TauDetailed computes tau-b with Knight's algorithm and reports the pair
// counts it used.
//
// Steps:
//  1. Validate: len(x) == len(y) and n ≥ 2.
//  2. Sort indices by (x, y) ascending.
//  3. Walk runs of equal x (n1) and of equal (x, y) (n3).
//  4. Merge-sort the y sequence in that order, counting exchanges (S).
//  5. Walk runs of equal y in the now y-sorted sequence (n2).
//  6. Combine; a zero denominator marks the sample degenerate.
//
// Errors:
//   - ErrLengthMismatch, ErrTooShort.
//
// Determinism:
//   - Sorting uses a total order on (x, y, index); results are reproducible.
func TauDetailed(x, y []float64) (Result, error) {
	n := len(x)
	if n != len(y) {
		return Result{}, ErrLengthMismatch
	}
	if n < 2 {
		return Result{}, ErrTooShort
	}

	// Stage 2: order indices lexicographically by (x, y).
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if x[ia] != x[ib] {
			return x[ia] < x[ib]
		}
		if y[ia] != y[ib] {
			return y[ia] < y[ib]
		}

		return ia < ib
	})

	res := Result{Pairs: int64(n) * int64(n-1) / 2}

	// Stage 3: ties in x and joint ties, counted from run lengths.
	var runX, runXY int64 = 1, 1
	for k := 1; k < n; k++ {
		prev, cur := idx[k-1], idx[k]
		if x[cur] == x[prev] {
			runX++
			if y[cur] == y[prev] {
				runXY++
			} else {
				res.TiesXY += runXY * (runXY - 1) / 2
				runXY = 1
			}
			continue
		}
		res.TiesX += runX * (runX - 1) / 2
		res.TiesXY += runXY * (runXY - 1) / 2
		runX, runXY = 1, 1
	}
	res.TiesX += runX * (runX - 1) / 2
	res.TiesXY += runXY * (runXY - 1) / 2

	// Stage 4: y in x-order; every exchange of the merge sort is one discordant pair.
	ys := make([]float64, n)
	for k, i := range idx {
		ys[k] = y[i]
	}
	buf := make([]float64, n)
	res.Discordant = mergeCount(ys, buf)

	// Stage 5: ties in y on the sorted sequence.
	var runY int64 = 1
	for k := 1; k < n; k++ {
		if ys[k] == ys[k-1] {
			runY++
			continue
		}
		res.TiesY += runY * (runY - 1) / 2
		runY = 1
	}
	res.TiesY += runY * (runY - 1) / 2

	// Stage 6: combine.
	return finish(res), nil
}

// Naive computes tau-b by scanning all n(n−1)/2 pairs.
// It returns the same Result as TauDetailed and exists as a reference.
//
// Complexity: O(n²) time, O(1) memory.
func Naive(x, y []float64) (Result, error) {
	n := len(x)
	if n != len(y) {
		return Result{}, ErrLengthMismatch
	}
	if n < 2 {
		return Result{}, ErrTooShort
	}

	res := Result{Pairs: int64(n) * int64(n-1) / 2}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := x[i] - x[j]
			dy := y[i] - y[j]
			switch {
			case dx == 0 && dy == 0:
				res.TiesX++
				res.TiesY++
				res.TiesXY++
			case dx == 0:
				res.TiesX++
			case dy == 0:
				res.TiesY++
			case (dx > 0) != (dy > 0):
				res.Discordant++
			}
		}
	}

	return finish(res), nil
}

// finish turns the counts into tau-b, flagging a vanishing denominator.
func finish(res Result) Result {
	dx := float64(res.Pairs - res.TiesX)
	dy := float64(res.Pairs - res.TiesY)
	if dx == 0 || dy == 0 {
		res.Tau = 0
		res.Degenerate = true

		return res
	}

	num := float64(res.Concordant() - res.Discordant)
	tau := num / math.Sqrt(dx*dy)
	// Guard rounding at the boundary.
	res.Tau = math.Max(-1, math.Min(1, tau))

	return res
}

// mergeCount sorts v ascending (bottom-up merge sort) and returns the number
// of strict inversions, i.e. pairs i < j with v[i] > v[j]. Equal values are
// taken from the left run first and never counted.
func mergeCount(v, buf []float64) int64 {
	n := len(v)
	var swaps int64
	src, dst := v, buf
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			i, j, k := lo, mid, lo
			for i < mid && j < hi {
				if src[j] < src[i] {
					dst[k] = src[j]
					swaps += int64(mid - i)
					j++
				} else {
					dst[k] = src[i]
					i++
				}
				k++
			}
			k += copy(dst[k:], src[i:mid])
			copy(dst[k:], src[j:hi])
		}
		src, dst = dst, src
	}
	// After an odd number of passes the sorted data sits in buf.
	if &src[0] != &v[0] {
		copy(v, src)
	}

	return swaps
}
