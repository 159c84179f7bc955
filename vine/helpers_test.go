package vine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vinecop/bicop"
	"github.com/katalvlaran/vinecop/vine"
)

// factor describes one column: x = load·z[group] + noise.
type factor struct {
	group int
	load  float64
}

// sample draws n rows of a latent factor model and converts them to
// pseudo-observations.
func sample(seed int64, n int, cols ...factor) *mat.Dense {
	r := rand.New(rand.NewSource(seed))
	groups := 0
	for _, c := range cols {
		groups = max(groups, c.group+1)
	}
	raw := mat.NewDense(n, len(cols), nil)
	z := make([]float64, groups)
	for i := 0; i < n; i++ {
		for g := range z {
			z[g] = r.NormFloat64()
		}
		for j, c := range cols {
			raw.Set(i, j, c.load*z[c.group]+0.2*r.NormFloat64())
		}
	}

	return vine.PseudoObs(raw)
}

// independent draws d unrelated columns.
func independent(seed int64, n, d int) *mat.Dense {
	cols := make([]factor, d)
	for j := range cols {
		cols[j] = factor{group: j}
	}

	return sample(seed, n, cols...)
}

// mixed draws d columns with varied dependence on two factors.
func mixed(seed int64, n, d int) *mat.Dense {
	cols := make([]factor, d)
	for j := range cols {
		cols[j] = factor{group: j % 2, load: 0.15 * float64(j+1)}
	}

	return sample(seed, n, cols...)
}

// fitLevel fits a Gaussian model on every edge of t and stores h-functions,
// the way Select does between levels.
func fitLevel(t *testing.T, tr *vine.Tree) {
	t.Helper()
	f, err := bicop.NewTauFitter(bicop.Gaussian)
	require.NoError(t, err)
	for i := range tr.Edges {
		e := &tr.Edges[i]
		u0, u1 := vine.PairData(tr, e.From, e.To, vine.CommonNeighbor(tr, e.From, e.To))
		m, err := f.Fit(u0, u1, e.Tau)
		require.NoError(t, err)
		e.Model = m
		e.H1, e.H2 = m.HFunc1(u0, u1), m.HFunc2(u0, u1)
	}
}

// totalWeight sums edge weights.
func totalWeight(edges []vine.Edge) float64 {
	var w float64
	for _, e := range edges {
		w += e.Weight
	}

	return w
}
