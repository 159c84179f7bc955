// SPDX-License-Identifier: MIT

package bicop

import "math"

// joe has generator φ(t) = −ln(1 − (1−t)^θ), θ ≥ 1.
type joe struct {
	theta float64
}

func (j joe) Generator(t float64) float64 {
	return -math.Log1p(-math.Pow(1-t, j.theta))
}

func (j joe) GeneratorInv(s float64) float64 {
	return 1 - math.Pow(-math.Expm1(-s), 1/j.theta)
}

func (j joe) GeneratorDerivative(t float64) float64 {
	p := math.Pow(1-t, j.theta)

	return -j.theta * math.Pow(1-t, j.theta-1) / (1 - p)
}

func (j joe) GeneratorDerivative2(t float64) float64 {
	p := math.Pow(1-t, j.theta)

	return j.theta * math.Pow(1-t, j.theta-2) * (j.theta - 1 + p) / ((1 - p) * (1 - p))
}

func (j joe) kendall() float64 { return generatorTau(j) }

// joeTheta inverts the Joe tau by bisection on [MinJoe, MaxJoe].
func joeTheta(tau float64) float64 {
	return Bisect(func(x float64) float64 { return joe{theta: x}.kendall() - tau }, MinJoe, MaxJoe, 1e-10, 200)
}
