package cpw

import (
	"math"

	"github.com/rnorris7756/CPW/internal/consts"
)

// Line is an immutable snapshot of one coplanar waveguide cross section.
// Every geometry derived coefficient is computed once in New, so the per
// frequency methods are pure arithmetic and safe for concurrent use.
// Changing the geometry means building a new Line.
type Line struct {
	params Params

	geo    geometry
	conf   conformal
	dist   distribution
	ind    inductanceMatch
	center resistanceMatch
	ground resistanceMatch

	capacitance float64 // C per length (F/m), frequency independent
	lossSlope   float64 // G per length divided by omega (S*s/m)
	kinetic     float64 // kinetic inductance per length (H/m)
}

// New validates p and precomputes the full coefficient set for it.
func New(p Params) (*Line, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	l := &Line{params: p}
	l.geo = p.geometry()
	l.conf = newConformal(l.geo)
	l.dist = newDistribution(l.geo, l.conf)
	l.ind = newInductanceMatch(p, l.geo, l.dist)
	l.center = newCenterResistanceMatch(p, l.geo, l.dist)
	l.ground = newGroundResistanceMatch(p, l.geo, l.dist)

	l.capacitance = 2 * consts.EPSILON0 * (l.dist.fupFull + p.EpsilonR*l.dist.flow)
	l.lossSlope = 2 * consts.EPSILON0 * p.EpsilonR * p.TanDelta * l.dist.flow
	l.kinetic = consts.MU0 * p.Lambda0 * p.Lambda0 * kineticFactor(l.geo, l.conf) / (l.geo.t * l.geo.w)

	return l, nil
}

// Params returns the parameters this line was built from.
func (l *Line) Params() Params { return l.params }

// WithParams builds a new Line from p, leaving l untouched.
func (l *Line) WithParams(p Params) (*Line, error) { return New(p) }

func omega(f float64) float64 { return 2 * math.Pi * f }

// Lk returns the kinetic inductance per length in H/m.
func (l *Line) Lk() float64 { return l.kinetic }

// LlAt returns the series inductance per length in H/m at frequency f in Hz.
func (l *Line) LlAt(f float64) float64 { return l.ind.at(omega(f)) }

// RlAt returns the series resistance per length in Ohm/m at frequency f,
// center conductor and ground planes combined.
func (l *Line) RlAt(f float64) float64 {
	w := omega(f)
	return l.center.at(w) + l.ground.at(w)
}

// ClAt returns the shunt capacitance per length in F/m. It does not depend
// on frequency.
func (l *Line) ClAt(f float64) float64 { return l.capacitance }

// GlAt returns the shunt conductance per length in S/m at frequency f.
func (l *Line) GlAt(f float64) float64 { return l.lossSlope * omega(f) }

// Ll evaluates LlAt for each frequency.
func (l *Line) Ll(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.LlAt(f)
	}
	return out
}

// Rl evaluates RlAt for each frequency.
func (l *Line) Rl(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.RlAt(f)
	}
	return out
}

// Cl evaluates ClAt for each frequency.
func (l *Line) Cl(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.ClAt(f)
	}
	return out
}

// Gl evaluates GlAt for each frequency.
func (l *Line) Gl(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.GlAt(f)
	}
	return out
}
