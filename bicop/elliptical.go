// SPDX-License-Identifier: MIT

package bicop

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// independence is the product copula C(u1,u2) = u1·u2.
type independence struct{}

func (independence) hfunc1(_, u2 float64) float64 { return u2 }

func (independence) tau() float64 { return 0 }

// gaussian is the normal copula with correlation rho.
type gaussian struct {
	rho float64
}

// hfunc1 is Φ((Φ⁻¹(u2) − ρ·Φ⁻¹(u1)) / sqrt(1 − ρ²)).
func (g gaussian) hfunc1(u1, u2 float64) float64 {
	x1 := distuv.UnitNormal.Quantile(u1)
	x2 := distuv.UnitNormal.Quantile(u2)

	return distuv.UnitNormal.CDF((x2 - g.rho*x1) / math.Sqrt(1-g.rho*g.rho))
}

// tau is 2/π · asin(ρ).
func (g gaussian) tau() float64 {
	return 2 / math.Pi * math.Asin(g.rho)
}

// gaussianRho inverts tau = 2/π · asin(ρ).
func gaussianRho(tau float64) float64 {
	return math.Sin(math.Pi / 2 * tau)
}
