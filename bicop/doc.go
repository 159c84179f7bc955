// SPDX-License-Identifier: MIT

// Package bicop implements the bivariate pair-copula models that a vine
// attaches to its edges.
//
// The vine structure selection only needs two things from a pair model:
// a way to fit it to a bivariate sample, and its conditional distribution
// functions (h-functions), which turn the sample into pseudo-observations for
// the next tree. Both are exposed through small interfaces, Fitter and Model;
// the vine package never names a concrete family.
//
// Families:
//
//	Independence  C(u1,u2) = u1·u2
//	Gaussian      elliptical, rho = sin(pi·tau/2)
//	Clayton       Archimedean, tau = θ/(θ+2)
//	Gumbel        Archimedean, tau = 1 − 1/θ
//	Frank         Archimedean, tau via the Debye function
//	Joe           Archimedean, tau via 1 + 4∫φ/φ'
//
// Archimedean families additionally expose their generator φ, its inverse
// and first two derivatives (the Archimedean interface). Clayton, Gumbel and
// Joe model positive dependence only; negative dependence is reached by
// rotating the copula by 90 or 270 degrees, and 180 degrees gives the
// survival copula. Frank is radially symmetric and takes a negative θ instead.
//
// h-functions:
//
//	HFunc1(u1, u2) = P(U2 ≤ u2 | U1 = u1) = ∂C/∂u1
//	HFunc2(u1, u2) = P(U1 ≤ u1 | U2 = u2) = ∂C/∂u2
//
// Inputs and outputs are clamped to [1e-10, 1−1e-10] so that the next tree
// always receives values inside the open unit interval.
//
// Fitting:
//
//	TauFitter inverts the Kendall's tau of the sample (tau-b, as computed by
//	the ktau package) into the parameter of one configured family. There is
//	no likelihood-based family selection.
package bicop
