// SPDX-License-Identifier: MIT

package ktau

import "errors"

var (
	// ErrLengthMismatch indicates that x and y have different lengths.
	ErrLengthMismatch = errors.New("ktau: samples differ in length")

	// ErrTooShort indicates fewer than two observations; no pair exists.
	ErrTooShort = errors.New("ktau: need at least two observations")
)

// Result carries tau-b together with the pair counts it was derived from.
//
// Fields:
//   - Tau       : tau-b in [−1, 1]; 0 when Degenerate.
//   - Pairs     : n0 = n(n−1)/2.
//   - TiesX     : n1, pairs tied in x (including joint ties).
//   - TiesY     : n2, pairs tied in y (including joint ties).
//   - TiesXY    : n3, pairs tied in both.
//   - Discordant: S, pairs ordered oppositely by x and y.
//   - Degenerate: true if all x or all y values are tied.
type Result struct {
	Tau        float64
	Pairs      int64
	TiesX      int64
	TiesY      int64
	TiesXY     int64
	Discordant int64
	Degenerate bool
}

// Concordant returns the number of pairs ordered the same way by x and y.
func (r Result) Concordant() int64 {
	return r.Pairs - r.TiesX - r.TiesY + r.TiesXY - r.Discordant
}
