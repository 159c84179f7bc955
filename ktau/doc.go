// SPDX-License-Identifier: MIT

// Package ktau computes Kendall's rank correlation between two samples.
//
// What & Why
//
//   - Kendall's tau measures monotone dependence: the normalized excess of
//     concordant over discordant pairs. It is invariant under strictly
//     increasing transforms, so it can be computed on raw data or on
//     pseudo-observations alike.
//   - Vine structure selection evaluates tau O(d²) times per tree level,
//     which makes an O(n log n) estimator worth having.
//
// Convention
//
//	All estimators in this package return tau-b:
//
//	    tau_b = (n0 − n1 − n2 + n3 − 2·S) / sqrt((n0 − n1)(n0 − n2))
//
//	where n0 = n(n−1)/2, n1 / n2 count pairs tied in x / y, n3 counts pairs
//	tied in both, and S is the number of discordant pairs. Without ties
//	tau-b equals tau-a. Pairs tied in one coordinate count in neither the
//	concordant nor the discordant total.
//
// Algorithms Provided
//
//   - Tau / TauDetailed: Knight's algorithm: sort by (x, y), count joint
//     ties, merge-sort y counting exchanges. Time O(n log n), space O(n).
//   - Naive: direct O(n²) pair scan; reference implementation for tests
//     and tiny samples.
//
// Degenerate input
//
//	If every x (or every y) is tied the denominator vanishes. Such samples
//	return tau = 0 with Result.Degenerate = true instead of NaN, so callers
//	can keep going and report the event.
package ktau
