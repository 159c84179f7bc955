// SPDX-License-Identifier: MIT

package bicop

import "math"

// clayton has generator φ(t) = (t^−θ − 1)/θ, θ > 0.
type clayton struct {
	theta float64
}

func (c clayton) Generator(t float64) float64 {
	return (math.Pow(t, -c.theta) - 1) / c.theta
}

func (c clayton) GeneratorInv(s float64) float64 {
	return math.Pow(1+c.theta*s, -1/c.theta)
}

func (c clayton) GeneratorDerivative(t float64) float64 {
	return -math.Pow(t, -c.theta-1)
}

func (c clayton) GeneratorDerivative2(t float64) float64 {
	return (c.theta + 1) * math.Pow(t, -c.theta-2)
}

func (c clayton) kendall() float64 { return c.theta / (c.theta + 2) }

// claytonTheta inverts tau = θ/(θ+2) for tau in (0,1).
func claytonTheta(tau float64) float64 {
	return 2 * tau / (1 - tau)
}
