// SPDX-License-Identifier: MIT

package bicop

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// frank has generator φ(t) = −ln((e^{−θt} − 1)/(e^{−θ} − 1)), θ ≠ 0.
// Negative θ gives negative dependence.
type frank struct {
	theta float64
}

func (f frank) Generator(t float64) float64 {
	return -math.Log(math.Expm1(-f.theta*t) / math.Expm1(-f.theta))
}

func (f frank) GeneratorInv(s float64) float64 {
	return -math.Log1p(math.Exp(-s)*math.Expm1(-f.theta)) / f.theta
}

func (f frank) GeneratorDerivative(t float64) float64 {
	e := math.Exp(-f.theta * t)

	return f.theta * e / math.Expm1(-f.theta*t)
}

func (f frank) GeneratorDerivative2(t float64) float64 {
	e := math.Exp(-f.theta * t)
	d := math.Expm1(-f.theta * t)

	return f.theta * f.theta * e / (d * d)
}

func (f frank) kendall() float64 { return frankTau(f.theta) }

// frankTau is 1 − 4/θ·(1 − D₁(θ)), with D₁ the first Debye function.
// tau is odd in θ, so only |θ| is integrated.
func frankTau(theta float64) float64 {
	a := math.Abs(theta)
	if a < 1e-5 {
		return theta / 9 // series limit; avoids cancellation near 0
	}
	debye := quad.Fixed(func(t float64) float64 { return t / math.Expm1(t) }, 0, a, tauQuadNodes, nil, 0) / a
	tau := 1 - 4/a*(1-debye)

	return math.Copysign(tau, theta)
}

// frankTheta inverts frankTau by bisection; |θ| is capped at MaxFrank.
func frankTheta(tau float64) float64 {
	a := math.Abs(tau)
	th := Bisect(func(x float64) float64 { return frankTau(x) - a }, 1e-6, MaxFrank, 1e-10, 200)

	return math.Copysign(th, tau)
}
