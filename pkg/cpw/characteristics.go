package cpw

import (
	"math"
	"math/cmplx"

	"github.com/rnorris7756/CPW/internal/consts"
)

// Reference frequency for the lumped element values entering
// ResonanceFrequencyLambda4. The per length parameters vary slowly around
// it, so the estimate holds for resonators in the microwave band.
const resonanceReference = 9e9 // Hz

// impedances returns the series impedance R+jwL and shunt admittance G+jwC
// per length at frequency f.
func (l *Line) impedances(f float64) (series, shunt complex128) {
	w := omega(f)
	series = complex(l.RlAt(f), w*l.LlAt(f))
	shunt = complex(l.GlAt(f), w*l.capacitance)
	return series, shunt
}

// Z0At returns the magnitude of the characteristic impedance in Ohm at
// frequency f in Hz. f must be positive.
func (l *Line) Z0At(f float64) float64 {
	series, shunt := l.impedances(f)
	return cmplx.Abs(cmplx.Sqrt(series / shunt))
}

// GammaAt returns the complex propagation constant in 1/m at frequency f.
func (l *Line) GammaAt(f float64) complex128 {
	series, shunt := l.impedances(f)
	return cmplx.Sqrt(series * shunt)
}

// AlphaAt returns the attenuation constant in 1/m at frequency f.
func (l *Line) AlphaAt(f float64) float64 { return real(l.GammaAt(f)) }

// BetaAt returns the phase constant in rad/m at frequency f.
func (l *Line) BetaAt(f float64) float64 { return imag(l.GammaAt(f)) }

// VelocityAt returns the phase velocity at frequency f as a fraction of the
// speed of light.
func (l *Line) VelocityAt(f float64) float64 {
	return 1 / math.Sqrt(l.capacitance*l.LlAt(f)) / consts.LIGHTSPEED
}

// Z0 evaluates Z0At for each frequency.
func (l *Line) Z0(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.Z0At(f)
	}
	return out
}

// Gamma evaluates GammaAt for each frequency.
func (l *Line) Gamma(freqs []float64) []complex128 {
	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		out[i] = l.GammaAt(f)
	}
	return out
}

// Alpha evaluates AlphaAt for each frequency.
func (l *Line) Alpha(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.AlphaAt(f)
	}
	return out
}

// Beta evaluates BetaAt for each frequency.
func (l *Line) Beta(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.BetaAt(f)
	}
	return out
}

// Velocity evaluates VelocityAt for each frequency.
func (l *Line) Velocity(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.VelocityAt(f)
	}
	return out
}

// LeqLambda4At returns the equivalent lumped inductance in H of a quarter
// wave resonator of physical length in m, evaluated at frequency f.
func (l *Line) LeqLambda4At(f, length float64) float64 {
	return 8 * length * l.LlAt(f) / (math.Pi * math.Pi)
}

// CeqLambda4At returns the equivalent lumped capacitance in F of a quarter
// wave resonator of physical length in m.
func (l *Line) CeqLambda4At(f, length float64) float64 {
	return length * l.ClAt(f) / 2
}

// ReqLambda4At returns the equivalent parallel resistance in Ohm of a
// quarter wave resonator of physical length in m, evaluated at frequency f.
func (l *Line) ReqLambda4At(f, length float64) float64 {
	return l.Z0At(f) / (l.AlphaAt(f) * length)
}

// QLambda4At returns the internal quality factor of a quarter wave
// resonator of physical length in m, evaluated at frequency f.
func (l *Line) QLambda4At(f, length float64) float64 {
	return math.Pi / (4 * l.AlphaAt(f) * length)
}

// LeqLambda4 evaluates LeqLambda4At for each frequency.
func (l *Line) LeqLambda4(freqs []float64, length float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.LeqLambda4At(f, length)
	}
	return out
}

// CeqLambda4 evaluates CeqLambda4At for each frequency.
func (l *Line) CeqLambda4(freqs []float64, length float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.CeqLambda4At(f, length)
	}
	return out
}

// ReqLambda4 evaluates ReqLambda4At for each frequency.
func (l *Line) ReqLambda4(freqs []float64, length float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.ReqLambda4At(f, length)
	}
	return out
}

// QLambda4 evaluates QLambda4At for each frequency.
func (l *Line) QLambda4(freqs []float64, length float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = l.QLambda4At(f, length)
	}
	return out
}

// ResonanceFrequencyLambda4 estimates the resonance frequency in Hz of a
// shorted quarter wave resonator of the given physical length in m. The
// lumped equivalents are taken at a fixed 9 GHz reference.
func (l *Line) ResonanceFrequencyLambda4(length float64) float64 {
	leq := l.LeqLambda4At(resonanceReference, length)
	ceq := l.CeqLambda4At(resonanceReference, length)
	return 1 / (2 * math.Pi * math.Sqrt(leq*ceq))
}
