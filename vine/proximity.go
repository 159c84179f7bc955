// SPDX-License-Identifier: MIT

package vine

import (
	"context"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vinecop/ktau"
)

// CommonNeighbor returns the previous-tree vertex shared by the source edges
// of vertices i and j of t, or −1 if they share none (or either vertex has no
// source edge). Two distinct edges of a tree share at most one vertex.
func CommonNeighbor(t *Tree, i, j int) int {
	a, b := t.Vertices[i].PrevEdge, t.Vertices[j].PrevEdge
	if a == NoPrevEdge || b == NoPrevEdge {
		return -1
	}
	for _, x := range a {
		if x == b[0] || x == b[1] {
			return x
		}
	}

	return -1
}

// PairData returns the samples of vertices i and j of t conditioned on the
// common neighbor c: a vertex whose source edge starts at c contributes H1,
// otherwise H2.
func PairData(t *Tree, i, j, c int) (u0, u1 []float64) {
	return side(&t.Vertices[i], c), side(&t.Vertices[j], c)
}

func side(v *Vertex, c int) []float64 {
	if v.PrevEdge[0] == c {
		return v.H1
	}

	return v.H2
}

// pairSlot is the per-pair result written by one goroutine.
type pairSlot struct {
	ok   bool
	cand Candidate
	warn *NumericWarning
}

// Candidates enumerates the admissible edges of t: every pair i < j,
// i-major, whose source edges share a vertex of the previous tree.
//
// For each admissible pair it computes the dependence of the pair data
// (Kendall's tau-b unless WithTauFunc is given), Weight = 1 − |Tau|, and the
// regular-vine sets: with A and B the variables of the two vertices,
// Conditioning = A ∩ B and Conditioned = [A \ B, B \ A].
//
// Pairs are evaluated concurrently, bounded by WithWorkers. Each goroutine
// writes its own slot; inadmissible slots are dropped afterwards, so the
// output order is the enumeration order regardless of scheduling.
//
// A constant side (tau undefined) or a non-finite custom tau yields tau 0
// and a NumericWarning; the pair stays a candidate.
//
// Errors: ctx.Err() wrapped with the level if ctx ends first.
//
// Complexity: O(m²) pairs for m vertices, each O(n log n) with ktau.
func Candidates(ctx context.Context, t *Tree, opts ...Option) ([]Candidate, []NumericWarning, error) {
	return candidates(ctx, t, buildOptions(opts))
}

func candidates(ctx context.Context, t *Tree, o Options) ([]Candidate, []NumericWarning, error) {
	m := len(t.Vertices)
	slots := make([]pairSlot, m*(m-1)/2)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers())

	var i, j, k int
enumerate:
	for i = 0; i < m; i++ {
		for j = i + 1; j < m; j++ {
			if gctx.Err() != nil {
				break enumerate
			}
			slot := &slots[k]
			i, j := i, j
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				evalPair(t, i, j, o.TauFunc, slot)

				return nil
			})
			k++
		}
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%s: level %d: %w", opCandidates, t.Level, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("%s: level %d: %w", opCandidates, t.Level, err)
	}

	var (
		out   = make([]Candidate, 0, len(slots))
		warns []NumericWarning
	)
	for idx := range slots {
		if !slots[idx].ok {
			continue
		}
		out = append(out, slots[idx].cand)
		if w := slots[idx].warn; w != nil {
			warns = append(warns, *w)
		}
	}

	return out, warns, nil
}

func evalPair(t *Tree, i, j int, tauFn TauFunc, slot *pairSlot) {
	c := CommonNeighbor(t, i, j)
	if c < 0 {
		return
	}
	u0, u1 := PairData(t, i, j, c)

	var (
		tau    float64
		reason string
	)
	if tauFn != nil {
		tau = tauFn(u0, u1)
		switch {
		case math.IsNaN(tau) || math.IsInf(tau, 0):
			tau, reason = 0, ReasonNonFiniteTau
		default:
			tau = math.Max(-1, math.Min(1, tau))
		}
	} else {
		r, err := ktau.TauDetailed(u0, u1)
		if err != nil || r.Degenerate {
			reason = ReasonDegenerateTau
		}
		tau = r.Tau
	}

	a, b := t.Vertices[i].variables(), t.Vertices[j].variables()
	conditioned := append(toInts(roaring.AndNot(a, b)), toInts(roaring.AndNot(b, a))...)

	slot.ok = true
	slot.cand = Candidate{
		From:         i,
		To:           j,
		Common:       c,
		Tau:          tau,
		Weight:       1 - math.Abs(tau),
		Conditioned:  conditioned,
		Conditioning: toInts(roaring.And(a, b)),
	}
	if reason != "" {
		slot.warn = &NumericWarning{Level: t.Level, Edge: [2]int{i, j}, Reason: reason}
	}
}
