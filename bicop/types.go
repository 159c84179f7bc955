// SPDX-License-Identifier: MIT

package bicop

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for model construction and fitting.
var (
	// ErrUnknownFamily indicates an unsupported family value or name.
	ErrUnknownFamily = errors.New("bicop: unknown family")

	// ErrRotation indicates a rotation other than 0/90/180/270, or a
	// rotation on a family that does not support one.
	ErrRotation = errors.New("bicop: unsupported rotation")

	// ErrParameterCount indicates the wrong number of parameters for a family.
	ErrParameterCount = errors.New("bicop: wrong number of parameters")

	// ErrParameterBounds indicates a parameter outside the family's domain.
	ErrParameterBounds = errors.New("bicop: parameter out of bounds")

	// ErrLengthMismatch indicates that the two margins differ in length.
	ErrLengthMismatch = errors.New("bicop: samples differ in length")

	// ErrInvalidTau indicates a Kendall's tau outside [−1, 1] or NaN.
	ErrInvalidTau = errors.New("bicop: tau must lie in [-1, 1]")
)

// Family identifies a pair-copula family.
type Family int

const (
	// Independence is the product copula; it has no parameters.
	Independence Family = iota

	// Gaussian is the normal copula with correlation parameter rho.
	Gaussian

	// Clayton is the Archimedean family with lower tail dependence.
	Clayton

	// Gumbel is the Archimedean family with upper tail dependence.
	Gumbel

	// Frank is the radially symmetric Archimedean family.
	Frank

	// Joe is the Archimedean family with strong upper tail dependence.
	Joe
)

var familyNames = [...]string{
	Independence: "independence",
	Gaussian:     "gaussian",
	Clayton:      "clayton",
	Gumbel:       "gumbel",
	Frank:        "frank",
	Joe:          "joe",
}

// String returns the lower-case family name.
func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("family(%d)", int(f))
	}

	return familyNames[f]
}

// Archimedean reports whether f is built from a generator.
func (f Family) Archimedean() bool {
	switch f {
	case Clayton, Gumbel, Frank, Joe:
		return true
	default:
		return false
	}
}

// Rotatable reports whether f accepts rotations other than 0.
// Frank is radially symmetric and covers negative tau with negative θ.
func (f Family) Rotatable() bool {
	switch f {
	case Clayton, Gumbel, Joe:
		return true
	default:
		return false
	}
}

// ParseFamily maps a case-insensitive name to a Family.
func ParseFamily(name string) (Family, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for f, s := range familyNames {
		if s == n {
			return Family(f), nil
		}
	}

	return 0, fmt.Errorf("ParseFamily(%q): %w", name, ErrUnknownFamily)
}

// Model is a fitted pair copula. The vine core only uses this interface.
type Model interface {
	// Family returns the copula family.
	Family() Family

	// Rotation returns 0, 90, 180 or 270.
	Rotation() int

	// Parameters returns a copy of the parameter vector.
	Parameters() []float64

	// Tau returns the model-implied Kendall's tau.
	Tau() float64

	// HFunc1 returns P(U2 ≤ u2 | U1 = u1) elementwise.
	HFunc1(u1, u2 []float64) []float64

	// HFunc2 returns P(U1 ≤ u1 | U2 = u2) elementwise.
	HFunc2(u1, u2 []float64) []float64
}

// Fitter produces a Model from a bivariate sample. tau is the empirical
// Kendall's tau of the sample, already computed by the caller.
type Fitter interface {
	Fit(u1, u2 []float64, tau float64) (Model, error)
}

// Archimedean exposes the generator φ of an Archimedean copula,
// C(u1,u2) = φ⁻¹(φ(u1) + φ(u2)).
type Archimedean interface {
	// Generator returns φ(t) for t in (0,1].
	Generator(t float64) float64

	// GeneratorInv returns φ⁻¹(s) for s ≥ 0.
	GeneratorInv(s float64) float64

	// GeneratorDerivative returns φ'(t).
	GeneratorDerivative(t float64) float64

	// GeneratorDerivative2 returns φ''(t).
	GeneratorDerivative2(t float64) float64
}

// kernel is the unrotated copula as seen by Bicop.
type kernel interface {
	// hfunc1 is ∂C/∂u1 for the unrotated copula.
	hfunc1(u1, u2 float64) float64

	// tau is the unrotated Kendall's tau.
	tau() float64
}
