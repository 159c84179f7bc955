// SPDX-License-Identifier: MIT

package vine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/vinecop/prim_kruskal"
)

// SelectTree picks a minimum-weight spanning tree over cands (equivalently a
// maximum-|tau| tree) and stores it in t.Edges, sorted by (From, To).
//
// Candidates become graph edges in slice order, so ties are resolved in
// favour of the earlier candidate by both Kruskal and Prim (rooted at 0).
// method is prim_kruskal.MethodKruskal or prim_kruskal.MethodPrim.
//
// Errors:
//   - *StructuralError if cands do not connect all vertices of t.
//   - prim_kruskal errors for an unknown method or malformed candidates.
func SelectTree(t *Tree, cands []Candidate, method string) error {
	m := len(t.Vertices)
	g := prim_kruskal.NewGraph(m)
	for _, c := range cands {
		if _, err := g.AddEdge(c.From, c.To, c.Weight); err != nil {
			return fmt.Errorf("%s: level %d: %w", opSelectTree, t.Level, err)
		}
	}

	mst, _, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(0))
	switch {
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		return fmt.Errorf("%s: %w", opSelectTree, &StructuralError{Level: t.Level, Vertices: m, Candidates: len(cands)})
	case err != nil:
		return fmt.Errorf("%s: level %d: %w", opSelectTree, t.Level, err)
	}

	edges := make([]Edge, len(mst))
	for i, me := range mst {
		c := cands[me.ID]
		from, to := c.From, c.To
		conditioned := cloneInts(c.Conditioned)
		if from > to {
			from, to = to, from
			if len(conditioned) == 2 {
				conditioned[0], conditioned[1] = conditioned[1], conditioned[0]
			}
		}
		edges[i] = Edge{
			From:         from,
			To:           to,
			Conditioned:  conditioned,
			Conditioning: cloneInts(c.Conditioning),
			Tau:          c.Tau,
			Weight:       c.Weight,
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].From != edges[b].From {
			return edges[a].From < edges[b].From
		}
		return edges[a].To < edges[b].To
	})
	t.Edges = edges

	return nil
}
