package vine_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vinecop/prim_kruskal"
	"github.com/katalvlaran/vinecop/vine"
)

// bruteForce returns the minimum total weight over all spanning trees formed
// by m−1 of the candidates.
func bruteForce(m int, cands []vine.Candidate) float64 {
	best := math.Inf(1)
	pick := make([]int, 0, m-1)

	var rec func(start int)
	rec = func(start int) {
		if len(pick) == m-1 {
			parent := make([]int, m)
			for i := range parent {
				parent[i] = i
			}
			var find func(int) int
			find = func(x int) int {
				if parent[x] != x {
					parent[x] = find(parent[x])
				}
				return parent[x]
			}
			var w float64
			for _, id := range pick {
				a, b := find(cands[id].From), find(cands[id].To)
				if a == b {
					return
				}
				parent[a] = b
				w += cands[id].Weight
			}
			best = math.Min(best, w)
			return
		}
		for i := start; i < len(cands); i++ {
			pick = append(pick, i)
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)

	return best
}

func TestSelectTree_MatchesBruteForce(t *testing.T) {
	ctx := context.Background()
	for d := 3; d <= 5; d++ {
		for seed := int64(1); seed <= 3; seed++ {
			base, err := vine.BaseTree(mixed(seed*10+int64(d), 80, d))
			require.NoError(t, err)

			tr := vine.Promote(base)
			for level := 0; level < d-1; level++ {
				cands, _, err := vine.Candidates(ctx, tr)
				require.NoError(t, err)
				for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
					require.NoError(t, vine.SelectTree(tr, cands, method))
					require.Len(t, tr.Edges, len(tr.Vertices)-1)
					assert.InDelta(t, bruteForce(len(tr.Vertices), cands), totalWeight(tr.Edges), 1e-12,
						"d=%d seed=%d level=%d %s", d, seed, level, method)
				}
				fitLevel(t, tr)
				tr = vine.Promote(tr)
			}
		}
	}
}

func TestSelectTree_SortedEdgesAndSets(t *testing.T) {
	tr := &vine.Tree{Level: 0, Vertices: make([]vine.Vertex, 4)}
	cands := []vine.Candidate{
		{From: 2, To: 3, Tau: 0.9, Weight: 0.1, Conditioned: []int{2, 3}},
		{From: 0, To: 3, Tau: -0.8, Weight: 0.2, Conditioned: []int{0, 3}},
		{From: 0, To: 1, Tau: 0.1, Weight: 0.9, Conditioned: []int{0, 1}},
		{From: 1, To: 2, Tau: 0.7, Weight: 0.3, Conditioned: []int{1, 2}},
	}
	require.NoError(t, vine.SelectTree(tr, cands, prim_kruskal.MethodKruskal))

	require.Len(t, tr.Edges, 3)
	assert.Equal(t, [2]int{0, 3}, [2]int{tr.Edges[0].From, tr.Edges[0].To})
	assert.Equal(t, [2]int{1, 2}, [2]int{tr.Edges[1].From, tr.Edges[1].To})
	assert.Equal(t, [2]int{2, 3}, [2]int{tr.Edges[2].From, tr.Edges[2].To})
	assert.Equal(t, -0.8, tr.Edges[0].Tau)
	assert.Equal(t, []int{0, 3}, tr.Edges[0].Conditioned)

	// edges own their sets
	tr.Edges[0].Conditioned[0] = 42
	assert.Equal(t, []int{0, 3}, cands[1].Conditioned)
}

func TestSelectTree_TiesFollowCandidateOrder(t *testing.T) {
	cands := []vine.Candidate{
		{From: 0, To: 1, Weight: 0.5},
		{From: 0, To: 2, Weight: 0.5},
		{From: 1, To: 2, Weight: 0.5},
	}
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		tr := &vine.Tree{Vertices: make([]vine.Vertex, 3)}
		require.NoError(t, vine.SelectTree(tr, cands, method))
		assert.Equal(t, 0, tr.Edges[0].From)
		assert.Equal(t, 1, tr.Edges[0].To)
		assert.Equal(t, 0, tr.Edges[1].From)
		assert.Equal(t, 2, tr.Edges[1].To, method)
	}
}

func TestSelectTree_Disconnected(t *testing.T) {
	tr := &vine.Tree{Level: 2, Vertices: make([]vine.Vertex, 4)}
	cands := []vine.Candidate{
		{From: 0, To: 1, Weight: 0.2},
		{From: 2, To: 3, Weight: 0.4},
	}
	err := vine.SelectTree(tr, cands, prim_kruskal.MethodKruskal)
	require.Error(t, err)
	assert.ErrorIs(t, err, vine.ErrStructural)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	var se *vine.StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, vine.StructuralError{Level: 2, Vertices: 4, Candidates: 2}, *se)
	assert.Empty(t, tr.Edges)
}

func TestSelectTree_BadCandidate(t *testing.T) {
	tr := &vine.Tree{Vertices: make([]vine.Vertex, 2)}
	err := vine.SelectTree(tr, []vine.Candidate{{From: 0, To: 5}}, prim_kruskal.MethodKruskal)
	assert.ErrorIs(t, err, prim_kruskal.ErrVertexOutOfRange)

	err = vine.SelectTree(tr, []vine.Candidate{{From: 0, To: 1, Weight: math.NaN()}}, prim_kruskal.MethodKruskal)
	assert.ErrorIs(t, err, prim_kruskal.ErrBadWeight)
}
