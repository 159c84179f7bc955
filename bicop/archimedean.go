// SPDX-License-Identifier: MIT

package bicop

import "gonum.org/v1/gonum/integrate/quad"

// tauQuadNodes is the Gauss–Legendre order used for tau integrals.
const tauQuadNodes = 128

// generator is an Archimedean generator that also knows its Kendall's tau.
type generator interface {
	Archimedean
	kendall() float64
}

// archimedean adapts a generator to the kernel interface.
type archimedean struct {
	gen generator
}

// hfunc1 uses ∂C/∂u1 = φ'(u1) / φ'(C(u1,u2)) with C = φ⁻¹(φ(u1) + φ(u2)).
func (a archimedean) hfunc1(u1, u2 float64) float64 {
	c := a.gen.GeneratorInv(a.gen.Generator(u1) + a.gen.Generator(u2))

	return a.gen.GeneratorDerivative(u1) / a.gen.GeneratorDerivative(c)
}

func (a archimedean) tau() float64 { return a.gen.kendall() }

// generatorTau evaluates tau = 1 + 4 ∫₀¹ φ(t)/φ'(t) dt numerically.
func generatorTau(g Archimedean) float64 {
	f := func(t float64) float64 {
		return g.Generator(t) / g.GeneratorDerivative(t)
	}

	return 1 + 4*quad.Fixed(f, 0, 1, tauQuadNodes, nil, 0)
}
