// SPDX-License-Identifier: MIT

package bicop

import "math"

// gumbel has generator φ(t) = (−ln t)^θ, θ ≥ 1.
type gumbel struct {
	theta float64
}

func (g gumbel) Generator(t float64) float64 {
	return math.Pow(-math.Log(t), g.theta)
}

func (g gumbel) GeneratorInv(s float64) float64 {
	return math.Exp(-math.Pow(s, 1/g.theta))
}

func (g gumbel) GeneratorDerivative(t float64) float64 {
	return -g.theta * math.Pow(-math.Log(t), g.theta-1) / t
}

func (g gumbel) GeneratorDerivative2(t float64) float64 {
	l := -math.Log(t)

	return g.theta * (g.theta - 1 + l) * math.Pow(l, g.theta-2) / (t * t)
}

func (g gumbel) kendall() float64 { return (g.theta - 1) / g.theta }

// gumbelTheta inverts tau = 1 − 1/θ for tau in [0,1).
func gumbelTheta(tau float64) float64 {
	return 1 / (1 - tau)
}

// GumbelHInv returns u2 with HFunc1(u1, u2) = q for the unrotated Gumbel
// copula with parameter theta.
//
// With x = −ln u1 and z = (x^θ + y^θ)^{1/θ}, y = −ln u2, the equation
// reduces to g(z) = z + (θ−1)·ln z + ln q − x + (1−θ)·ln x = 0, which is
// solved by Newton's method on z > x. Steps that produce NaN are halved and
// reversed; steps that leave z ≤ x are halved back into the domain.
//
// Complexity: at most 20 Newton steps, each with at most 20 halvings.
func GumbelHInv(u1, q, theta float64) float64 {
	const (
		maxIter = 20
		tol     = 1e-6
	)
	x := -math.Log(u1)
	con := math.Log(q) - x + (1-theta)*math.Log(x)
	z := math.Pow(2, 1/theta) * x // start from the diagonal y = x

	step := 0.1
	for iter := 0; iter < maxIter; iter++ {
		g := z + (theta-1)*math.Log(z) + con
		gp := 1 + (theta-1)/z
		if s := g / gp; math.IsNaN(s) {
			step /= -2
		} else {
			step = s
		}
		z -= step
		for it := 0; z <= x && it < maxIter; it++ {
			step /= 2
			z += step
		}
		if math.Abs(step) <= tol {
			break
		}
	}

	y := math.Pow(math.Pow(z, theta)-math.Pow(x, theta), 1/theta)

	return math.Exp(-y)
}
