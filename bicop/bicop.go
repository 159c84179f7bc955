// SPDX-License-Identifier: MIT

package bicop

import (
	"fmt"
	"math"
)

// clampEps keeps values strictly inside the unit interval.
const clampEps = 1e-10

// Parameter domains. Fitted parameters are clamped into these ranges.
const (
	MaxGaussianRho = 0.9999
	MinClayton     = 1e-10
	MaxClayton     = 28.0
	MinGumbel      = 1.0
	MaxGumbel      = 50.0
	MaxFrank       = 50.0
	MinJoe         = 1.0
	MaxJoe         = 30.0
)

// Bicop is a parametric pair copula: a family, a rotation and a parameter
// vector. It implements Model and is immutable after New.
type Bicop struct {
	family   Family
	rotation int
	params   []float64
	k        kernel
}

var _ Model = (*Bicop)(nil)

// New builds a pair copula.
//
// Errors:
//   - ErrUnknownFamily for an unsupported family.
//   - ErrRotation for a rotation outside {0,90,180,270} or on a family that is
//     not Rotatable.
//   - ErrParameterCount if len(params) does not match the family.
//   - ErrParameterBounds if a parameter is outside its domain.
func New(family Family, rotation int, params ...float64) (*Bicop, error) {
	switch rotation {
	case 0, 90, 180, 270:
	default:
		return nil, fmt.Errorf("New(%s, %d): %w", family, rotation, ErrRotation)
	}
	if rotation != 0 && !family.Rotatable() {
		return nil, fmt.Errorf("New(%s, %d): %w", family, rotation, ErrRotation)
	}

	want := 1
	if family == Independence {
		want = 0
	}
	if len(params) != want {
		return nil, fmt.Errorf("New(%s): got %d parameters, want %d: %w", family, len(params), want, ErrParameterCount)
	}

	k, err := newKernel(family, params)
	if err != nil {
		return nil, err
	}

	p := make([]float64, len(params))
	copy(p, params)

	return &Bicop{family: family, rotation: rotation, params: p, k: k}, nil
}

// newKernel validates parameters and returns the unrotated copula.
func newKernel(family Family, params []float64) (kernel, error) {
	bad := func(lo, hi float64) error {
		return fmt.Errorf("New(%s): parameter %g not in [%g, %g]: %w", family, params[0], lo, hi, ErrParameterBounds)
	}

	switch family {
	case Independence:
		return independence{}, nil
	case Gaussian:
		rho := params[0]
		if !(math.Abs(rho) < 1) {
			return nil, bad(-1, 1)
		}
		return gaussian{rho: rho}, nil
	case Clayton:
		th := params[0]
		if !(th > 0 && th <= MaxClayton) {
			return nil, bad(MinClayton, MaxClayton)
		}
		return archimedean{gen: clayton{theta: th}}, nil
	case Gumbel:
		th := params[0]
		if !(th >= MinGumbel && th <= MaxGumbel) {
			return nil, bad(MinGumbel, MaxGumbel)
		}
		return archimedean{gen: gumbel{theta: th}}, nil
	case Frank:
		th := params[0]
		if !(th != 0 && math.Abs(th) <= MaxFrank) {
			return nil, bad(-MaxFrank, MaxFrank)
		}
		return archimedean{gen: frank{theta: th}}, nil
	case Joe:
		th := params[0]
		if !(th >= MinJoe && th <= MaxJoe) {
			return nil, bad(MinJoe, MaxJoe)
		}
		return archimedean{gen: joe{theta: th}}, nil
	default:
		return nil, fmt.Errorf("New(%d): %w", int(family), ErrUnknownFamily)
	}
}

// Family returns the copula family.
func (b *Bicop) Family() Family { return b.family }

// Rotation returns the rotation in degrees.
func (b *Bicop) Rotation() int { return b.rotation }

// Parameters returns a copy of the parameter vector.
func (b *Bicop) Parameters() []float64 {
	p := make([]float64, len(b.params))
	copy(p, b.params)

	return p
}

// Tau returns the model-implied Kendall's tau; 90 and 270 degree rotations
// flip its sign.
func (b *Bicop) Tau() float64 {
	t := b.k.tau()
	if b.rotation == 90 || b.rotation == 270 {
		return -t
	}

	return t
}

// Generator returns the Archimedean generator, if the family has one.
func (b *Bicop) Generator() (Archimedean, bool) {
	a, ok := b.k.(archimedean)
	if !ok {
		return nil, false
	}

	return a.gen, true
}

// String renders e.g. "gumbel(270)[1.5]".
func (b *Bicop) String() string {
	return fmt.Sprintf("%s(%d)%v", b.family, b.rotation, b.params)
}

// HFunc1 returns P(U2 ≤ u2 | U1 = u1) elementwise.
// Only the first min(len(u1), len(u2)) elements are used.
func (b *Bicop) HFunc1(u1, u2 []float64) []float64 {
	n := min(len(u1), len(u2))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = clamp(b.h1(clamp(u1[i]), clamp(u2[i])))
	}

	return out
}

// HFunc2 returns P(U1 ≤ u1 | U2 = u2) elementwise.
// Only the first min(len(u1), len(u2)) elements are used.
func (b *Bicop) HFunc2(u1, u2 []float64) []float64 {
	n := min(len(u1), len(u2))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = clamp(b.h2(clamp(u1[i]), clamp(u2[i])))
	}

	return out
}

// HInv1 inverts HFunc1 in its second argument: it returns u2 such that
// HFunc1(u1, u2) = q, elementwise. Unrotated Gumbel uses a Newton iteration;
// every other model is inverted by bisection, which works because HFunc1 is
// increasing in u2 for every family and rotation.
func (b *Bicop) HInv1(u1, q []float64) []float64 {
	n := min(len(u1), len(q))
	out := make([]float64, n)
	var (
		gum    gumbel
		newton bool
	)
	if a, ok := b.k.(archimedean); ok && b.rotation == 0 {
		gum, newton = a.gen.(gumbel)
	}
	for i := 0; i < n; i++ {
		a, p := clamp(u1[i]), clamp(q[i])
		if newton {
			out[i] = clamp(GumbelHInv(a, p, gum.theta))
			continue
		}
		out[i] = clamp(Bisect(func(v float64) float64 { return b.h1(a, v) - p }, clampEps, 1-clampEps, 1e-12, 200))
	}

	return out
}

// h1 applies the rotation to the kernel's ∂C/∂u1.
func (b *Bicop) h1(u1, u2 float64) float64 {
	switch b.rotation {
	case 90:
		return b.k.hfunc1(1-u1, u2)
	case 180:
		return 1 - b.k.hfunc1(1-u1, 1-u2)
	case 270:
		return 1 - b.k.hfunc1(u1, 1-u2)
	default:
		return b.k.hfunc1(u1, u2)
	}
}

// h2 applies the rotation to ∂C/∂u2. All kernels are exchangeable, so the
// unrotated ∂C/∂u2(u1,u2) equals hfunc1(u2,u1).
func (b *Bicop) h2(u1, u2 float64) float64 {
	switch b.rotation {
	case 90:
		return 1 - b.k.hfunc1(u2, 1-u1)
	case 180:
		return 1 - b.k.hfunc1(1-u2, 1-u1)
	case 270:
		return b.k.hfunc1(1-u2, u1)
	default:
		return b.k.hfunc1(u2, u1)
	}
}

// clamp keeps v inside [clampEps, 1−clampEps]; NaN maps to 0.5.
func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0.5
	case v < clampEps:
		return clampEps
	case v > 1-clampEps:
		return 1 - clampEps
	default:
		return v
	}
}
