// SPDX-License-Identifier: MIT

package bicop

import (
	"fmt"
	"math"
)

// DefaultIndependenceThreshold disables the independence shortcut:
// only an exact tau of 0 yields Independence.
const DefaultIndependenceThreshold = 0.0

// ParametersToTau returns the Kendall's tau implied by an unrotated model of
// the given family.
func ParametersToTau(family Family, params ...float64) (float64, error) {
	b, err := New(family, 0, params...)
	if err != nil {
		return 0, err
	}

	return b.Tau(), nil
}

// TauToParameters inverts the tau map of family.
//
// Gaussian and Frank model both signs directly. Clayton, Gumbel and Joe only
// cover tau ≥ 0, so |tau| is inverted and the caller picks a 90 degree
// rotation for negative tau. Results are clamped into the family's bounds,
// so |tau| close to 1 maps to the boundary parameter.
//
// Errors: ErrInvalidTau for NaN or |tau| > 1; ErrUnknownFamily.
func TauToParameters(family Family, tau float64) ([]float64, error) {
	if math.IsNaN(tau) || math.Abs(tau) > 1 {
		return nil, fmt.Errorf("TauToParameters(%s, %g): %w", family, tau, ErrInvalidTau)
	}
	a := math.Abs(tau)

	switch family {
	case Independence:
		return []float64{}, nil
	case Gaussian:
		return []float64{between(gaussianRho(tau), -MaxGaussianRho, MaxGaussianRho)}, nil
	case Clayton:
		return []float64{between(claytonTheta(a), MinClayton, MaxClayton)}, nil
	case Gumbel:
		return []float64{between(gumbelTheta(a), MinGumbel, MaxGumbel)}, nil
	case Frank:
		return []float64{frankTheta(tau)}, nil
	case Joe:
		return []float64{joeTheta(a)}, nil
	default:
		return nil, fmt.Errorf("TauToParameters(%d): %w", int(family), ErrUnknownFamily)
	}
}

// between clamps v into [lo, hi]; +Inf maps to hi.
func between(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// TauFitter fits a single family by inverting Kendall's tau.
type TauFitter struct {
	family    Family
	threshold float64
}

var _ Fitter = (*TauFitter)(nil)

// FitOption configures a TauFitter.
type FitOption func(*TauFitter)

// WithIndependenceThreshold makes Fit return the independence copula whenever
// |tau| ≤ t. Panics if t is NaN or outside [0, 1).
func WithIndependenceThreshold(t float64) FitOption {
	if math.IsNaN(t) || t < 0 || t >= 1 {
		panic(fmt.Sprintf("bicop: WithIndependenceThreshold(%g): must be in [0, 1)", t))
	}

	return func(f *TauFitter) { f.threshold = t }
}

// NewTauFitter returns a fitter for family.
// Errors: ErrUnknownFamily.
func NewTauFitter(family Family, opts ...FitOption) (*TauFitter, error) {
	if family < Independence || family > Joe {
		return nil, fmt.Errorf("NewTauFitter(%d): %w", int(family), ErrUnknownFamily)
	}
	f := &TauFitter{family: family, threshold: DefaultIndependenceThreshold}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Family returns the family this fitter produces.
func (f *TauFitter) Family() Family { return f.family }

// Fit maps tau to a model of the configured family. Negative tau on a family
// that only models positive dependence is handled with a 90 degree rotation.
// The samples are only checked for equal length.
//
// Errors: ErrLengthMismatch, ErrInvalidTau.
func (f *TauFitter) Fit(u1, u2 []float64, tau float64) (Model, error) {
	if len(u1) != len(u2) {
		return nil, fmt.Errorf("Fit: %d vs %d: %w", len(u1), len(u2), ErrLengthMismatch)
	}
	if math.IsNaN(tau) || math.Abs(tau) > 1 {
		return nil, fmt.Errorf("Fit(%g): %w", tau, ErrInvalidTau)
	}
	family, rotation := f.family, 0
	if tau == 0 || math.Abs(tau) <= f.threshold {
		family = Independence
	}
	if tau < 0 && family.Rotatable() {
		rotation = 90
	}

	params, err := TauToParameters(family, tau)
	if err != nil {
		return nil, err
	}
	b, err := New(family, rotation, params...)
	if err != nil {
		return nil, err
	}

	return b, nil
}
