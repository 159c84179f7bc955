// SPDX-License-Identifier: MIT

// Package vinecop selects the structure of regular vine copulas.
//
// A vine copula decomposes the dependence of d variables into a cascade of
// bivariate (conditional) pair copulas arranged on d−1 nested trees. This
// module grows those trees greedily: every level keeps the spanning tree with
// the largest total |Kendall's tau| among the edges allowed by the proximity
// condition.
//
// Under the hood, everything is organized under small subpackages:
//
//	ktau/          Kendall's tau-b in O(n log n) (Knight's algorithm)
//	prim_kruskal/  index-based minimum spanning trees (Kruskal, Prim)
//	bicop/         pair-copula families, tau inversion and h-functions
//	metrics/       operational metrics (no-op, in-memory, Prometheus)
//	vine/          base tree, promotion, proximity candidates, selection
//
// Quick start:
//
//	u := vine.PseudoObs(raw)                  // n×d ranks in (0,1)
//	s, err := vine.Select(ctx, u)             // d−1 trees
//	for _, p := range s.Pairs() {
//		fmt.Println(p.Level, p.Conditioned, p.Conditioning, p.Tau)
//	}
//
//	go get github.com/katalvlaran/vinecop
package vinecop
