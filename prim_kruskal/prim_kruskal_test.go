package prim_kruskal_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert" // assertion library
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vinecop/prim_kruskal" // package under test
)

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	0-1 (weight 1), 1-2 (weight 2), 0-2 (weight 3).
//
// This graph's MST consists of edges 0-1 and 1-2 with total weight 3.
func buildTriangle() *prim_kruskal.Graph {
	g := prim_kruskal.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(0, 2, 3)

	return g
}

// buildMediumGraph creates a connected, weighted graph with n vertices and edgesCount total edges.
// - First, it ensures connectivity by adding a chain 0-1-...-(n-1) with random weights in [1,11).
// - Then it adds (edgesCount - (n-1)) additional random edges with random weights in [1,101).
// The random number generator is seeded deterministically for reproducibility.
func buildMediumGraph(n, edgesCount int) *prim_kruskal.Graph {
	g := prim_kruskal.NewGraph(n)
	r := rand.New(rand.NewSource(42))

	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(i-1, i, 1.0+r.Float64()+float64(r.Intn(10)))
	}
	for extra := edgesCount - (n - 1); extra > 0; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_, _ = g.AddEdge(u, v, 1.0+r.Float64()+float64(r.Intn(100)))
		extra--
	}

	return g
}

// pairSet renders MST edges as a set of "u-v" keys with u < v.
func pairSet(edges []prim_kruskal.Edge) map[string]bool {
	names := make(map[string]bool, len(edges))
	for _, e := range edges {
		u, v := e.From, e.To
		if u > v {
			u, v = v, u
		}
		names[fmt.Sprintf("%d-%d", u, v)] = true
	}

	return names
}

// TestValidation_EmptyOrDisconnected verifies that Prim and Kruskal return ErrDisconnected
// when the graph has no vertices or when it's impossible to form a spanning tree.
func TestValidation_EmptyOrDisconnected(t *testing.T) {
	g := prim_kruskal.NewGraph(0)

	edgesP, totalP, errP := prim_kruskal.Prim(g, 0)
	assert.Empty(t, edgesP)
	assert.Zero(t, totalP)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)

	edgesK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.Empty(t, edgesK)
	assert.Zero(t, totalK)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)
}

// TestValidation_NilGraph verifies that both algorithms reject a nil graph.
func TestValidation_NilGraph(t *testing.T) {
	_, _, errK := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, errK, prim_kruskal.ErrInvalidGraph)

	_, _, errP := prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, errP, prim_kruskal.ErrInvalidGraph)
}

func TestValidation_RootOutOfRange(t *testing.T) {
	g := buildTriangle()

	_, _, err := prim_kruskal.Prim(g, -1)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)

	_, _, err = prim_kruskal.Prim(g, 3)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)
}

func TestAddEdge_Errors(t *testing.T) {
	g := prim_kruskal.NewGraph(2)

	_, err := g.AddEdge(0, 2, 1)
	assert.ErrorIs(t, err, prim_kruskal.ErrVertexOutOfRange)

	_, err = g.AddEdge(1, 1, 1)
	assert.ErrorIs(t, err, prim_kruskal.ErrLoopNotAllowed)

	_, err = g.AddEdge(0, 1, math.NaN())
	assert.ErrorIs(t, err, prim_kruskal.ErrBadWeight)

	_, err = g.AddEdge(0, 1, math.Inf(1))
	assert.ErrorIs(t, err, prim_kruskal.ErrBadWeight)

	id, err := g.AddEdge(1, 0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, []int{0}, g.Incident(0))
	assert.Equal(t, 0, g.Edge(0).Other(1))
}

// TestPrim_Triangle ensures that Prim on the triangle graph picks the correct MST edges and weight.
func TestPrim_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Prim(buildTriangle(), 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Len(t, mst, 2)

	names := pairSet(mst)
	assert.True(t, names["0-1"], "edge 0-1 must be in MST")
	assert.True(t, names["1-2"], "edge 1-2 must be in MST")
}

// TestKruskal_Triangle ensures that Kruskal on the triangle graph picks the correct MST edges and weight.
func TestKruskal_Triangle(t *testing.T) {
	mst, total, err := prim_kruskal.Kruskal(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Len(t, mst, 2)

	names := pairSet(mst)
	assert.True(t, names["0-1"], "edge 0-1 must be in MST")
	assert.True(t, names["1-2"], "edge 1-2 must be in MST")
}

// TestSingleVertexGraph verifies behavior when the graph has exactly one vertex.
func TestSingleVertexGraph(t *testing.T) {
	g := prim_kruskal.NewGraph(1)

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.NoError(t, errK)
	assert.Empty(t, mstK)
	assert.Zero(t, totalK)

	mstP, totalP, errP := prim_kruskal.Prim(g, 0)
	assert.NoError(t, errP)
	assert.Empty(t, mstP)
	assert.Zero(t, totalP)
}

// TestTwoIsolatedVertices verifies that a graph with two isolated vertices
// returns ErrDisconnected from both Prim and Kruskal.
func TestTwoIsolatedVertices(t *testing.T) {
	g := prim_kruskal.NewGraph(2)

	_, _, errK := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, errK, prim_kruskal.ErrDisconnected)

	_, _, errP := prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, errP, prim_kruskal.ErrDisconnected)
}

// TestParallelEdgesSelection verifies that when multiple edges exist between the same vertices,
// both Prim and Kruskal pick the lighter edge.
func TestParallelEdgesSelection(t *testing.T) {
	g := prim_kruskal.NewGraph(2)
	_, err := g.AddEdge(0, 1, 5)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.NoError(t, errK)
	assert.Equal(t, 1.0, totalK)
	assert.Len(t, mstK, 1)
	assert.Equal(t, 1, mstK[0].ID)

	mstP, totalP, errP := prim_kruskal.Prim(g, 0)
	assert.NoError(t, errP)
	assert.Equal(t, 1.0, totalP)
	assert.Len(t, mstP, 1)
	assert.Equal(t, 1, mstP[0].ID)
}

// TestTieBreakByInsertionOrder verifies that equal weights resolve to the
// lowest edge ID in both algorithms.
func TestTieBreakByInsertionOrder(t *testing.T) {
	// Square 0-1-2-3-0 with all weights equal: the last inserted edge must be dropped.
	g := prim_kruskal.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 0.5)
	_, _ = g.AddEdge(1, 2, 0.5)
	_, _ = g.AddEdge(2, 3, 0.5)
	_, _ = g.AddEdge(3, 0, 0.5)

	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		mst, _, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method))
		require.NoError(t, err, method)
		ids := make(map[int]bool, len(mst))
		for _, e := range mst {
			ids[e.ID] = true
		}
		assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, ids, method)
	}
}

// TestOrientationPreserved verifies that edges come back with the orientation they were inserted with.
func TestOrientationPreserved(t *testing.T) {
	g := prim_kruskal.NewGraph(3)
	_, _ = g.AddEdge(2, 0, 1)
	_, _ = g.AddEdge(2, 1, 1)

	mst, _, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	for _, e := range mst {
		assert.Equal(t, 2, e.From)
	}
}

// TestComparison_MediumGraph compares Prim vs. Kruskal on a larger randomly generated graph.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(10, 20)

	mstK, totalK, errK := prim_kruskal.Kruskal(g)
	assert.NoError(t, errK)
	assert.Len(t, mstK, g.Order()-1)

	mstP, totalP, errP := prim_kruskal.Prim(g, 0)
	assert.NoError(t, errP)
	assert.Len(t, mstP, g.Order()-1)

	const tolerance = 1e-10
	assert.InDelta(t, totalK, totalP, tolerance)
}

// TestKruskal_BruteForce checks optimality against exhaustive enumeration of
// all spanning trees on small complete graphs.
func TestKruskal_BruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for n := 2; n <= 5; n++ {
		g := prim_kruskal.NewGraph(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				_, _ = g.AddEdge(i, j, r.Float64())
			}
		}
		_, total, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		assert.InDelta(t, bruteForceMST(g), total, 1e-12, "n=%d", n)
	}
}

// bruteForceMST enumerates all (n-1)-subsets of edges and returns the lightest spanning tree weight.
func bruteForceMST(g *prim_kruskal.Graph) float64 {
	edges := g.Edges()
	n := g.Order()
	best := math.Inf(1)
	var rec func(start int, picked []prim_kruskal.Edge)
	rec = func(start int, picked []prim_kruskal.Edge) {
		if len(picked) == n-1 {
			if spans(n, picked) {
				w := 0.0
				for _, e := range picked {
					w += e.Weight
				}
				best = math.Min(best, w)
			}
			return
		}
		for i := start; i < len(edges); i++ {
			rec(i+1, append(picked, edges[i]))
		}
	}
	rec(0, nil)

	return best
}

// spans reports whether n-1 edges connect all n vertices.
func spans(n int, edges []prim_kruskal.Edge) bool {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(u int) int {
		if parent[u] != u {
			parent[u] = find(parent[u])
		}
		return parent[u]
	}
	for _, e := range edges {
		a, b := find(e.From), find(e.To)
		if a == b {
			return false
		}
		parent[a] = b
	}

	return true
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle()

	_, total, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	_, total, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	assert.True(t, prim_kruskal.ValidMethod(prim_kruskal.MethodPrim))
	assert.False(t, prim_kruskal.ValidMethod(""))
}
