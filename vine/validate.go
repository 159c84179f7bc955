// SPDX-License-Identifier: MIT

package vine

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// Validate checks that s is a regular vine on s.Dim variables:
//   - Dim−1 trees; Trees[k] has Level k, Dim−k vertices and Dim−k−1 edges;
//   - the edges of every tree form a spanning tree (connected, acyclic);
//   - vertex k of Trees[j] stems from edge k of Trees[j−1] (PrevEdge);
//   - proximity: the source edges of adjacent vertices share a vertex;
//   - Conditioning = A ∩ B (size j) and Conditioned = [A \ B, B \ A] for the
//     variable sets A, B of the endpoints;
//   - Weight = 1 − |Tau|.
//
// Errors: ErrInvalidStructure describing the first violation.
//
// Complexity: O(d²) set operations.
func (s *Structure) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%s: %s: %w", opValidate, fmt.Sprintf(format, args...), ErrInvalidStructure)
	}

	d := s.Dim
	if d < minVariables {
		return bad("dimension %d", d)
	}
	if len(s.Trees) != d-1 {
		return bad("%d trees, want %d", len(s.Trees), d-1)
	}

	var prev *Tree
	for k := range s.Trees {
		t := &s.Trees[k]
		if t.Level != k {
			return bad("tree %d has level %d", k, t.Level)
		}
		if len(t.Vertices) != d-k || len(t.Edges) != d-k-1 {
			return bad("level %d: %d vertices and %d edges, want %d and %d", k, len(t.Vertices), len(t.Edges), d-k, d-k-1)
		}

		vars := make([]*roaring.Bitmap, len(t.Vertices))
		for v := range t.Vertices {
			want := [2]int{d, v}
			if prev != nil {
				pe := prev.Edges[v]
				want = [2]int{pe.From, pe.To}
				vars[v] = bitmapOf(pe.Conditioned, pe.Conditioning)
			} else {
				vars[v] = bitmapOf([]int{v})
			}
			if t.Vertices[v].PrevEdge != want {
				return bad("level %d vertex %d: prev edge %v, want %v", k, v, t.Vertices[v].PrevEdge, want)
			}
		}

		for _, e := range t.Edges {
			if e.From < 0 || e.From >= e.To || e.To >= len(t.Vertices) {
				return bad("level %d: edge (%d,%d) out of range", k, e.From, e.To)
			}
			if CommonNeighbor(t, e.From, e.To) < 0 {
				return bad("level %d: edge (%d,%d) violates proximity", k, e.From, e.To)
			}
			a, b := vars[e.From], vars[e.To]
			conditioning := toInts(roaring.And(a, b))
			conditioned := append(toInts(roaring.AndNot(a, b)), toInts(roaring.AndNot(b, a))...)
			if len(conditioning) != k || len(conditioned) != 2 {
				return bad("level %d: edge (%d,%d) has %d conditioning and %d conditioned variables", k, e.From, e.To, len(conditioning), len(conditioned))
			}
			if !slices.Equal(conditioning, e.Conditioning) || !slices.Equal(conditioned, e.Conditioned) {
				return bad("level %d: edge (%d,%d) sets %v|%v, want %v|%v", k, e.From, e.To, e.Conditioned, e.Conditioning, conditioned, conditioning)
			}
			if math.Abs(e.Weight-(1-math.Abs(e.Tau))) > 1e-12 {
				return bad("level %d: edge (%d,%d) weight %g for tau %g", k, e.From, e.To, e.Weight, e.Tau)
			}
		}

		if !isSpanningTree(len(t.Vertices), t.Edges) {
			return bad("level %d: edges do not form a spanning tree", k)
		}
		prev = t
	}

	return nil
}

// isSpanningTree reports whether edges connect all n vertices without a
// cycle, by a breadth-first walk from vertex 0. n−1 edges that reach every
// vertex cannot close a cycle.
func isSpanningTree(n int, edges []Edge) bool {
	if len(edges) != n-1 {
		return false
	}
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	visited := make([]bool, n)
	visited[0] = true
	queue := []int{0}
	seen := 1
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range adj[v] {
			if !visited[w] {
				visited[w] = true
				seen++
				queue = append(queue, w)
			}
		}
	}

	return seen == n
}
