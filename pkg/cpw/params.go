package cpw

import "fmt"

// Params describes the cross section of a coplanar waveguide: a center
// conductor of width W between two gaps of width S, flanked by ground planes
// of width Wg, all of metal thickness T on a substrate with permittivity
// EpsilonR. All values are SI units.
type Params struct {
	EpsilonR float64 // relative permittivity of the substrate
	TanDelta float64 // loss tangent of the substrate
	Kappa    float64 // conductivity of the metal (S/m)
	W        float64 // center conductor width (m)
	S        float64 // gap width between center conductor and ground (m)
	T        float64 // metal thickness (m)
	Wg       float64 // ground plane width (m)
	Lambda0  float64 // magnetic penetration depth of the metal (m)
}

// DefaultParams returns a typical superconducting resonator geometry on a
// silicon substrate.
func DefaultParams() Params {
	return Params{
		EpsilonR: 11.68,
		TanDelta: 7e-4,
		Kappa:    3.53e50,
		W:        19e-6,
		S:        11.5e-6,
		T:        100e-9,
		Wg:       200e-6,
		Lambda0:  40e-9,
	}
}

// Validate reports whether the parameters describe a physically meaningful
// cross section. The comparisons are written so that NaN values fail too.
func (p Params) Validate() error {
	switch {
	case !(p.W > 0):
		return fmt.Errorf("center conductor width must be positive, got %v", p.W)
	case !(p.S > 0):
		return fmt.Errorf("gap width must be positive, got %v", p.S)
	case !(p.T > 0):
		return fmt.Errorf("metal thickness must be positive, got %v", p.T)
	case !(p.Wg > 0):
		return fmt.Errorf("ground plane width must be positive, got %v", p.Wg)
	case !(p.Lambda0 > 0):
		return fmt.Errorf("penetration depth must be positive, got %v", p.Lambda0)
	case !(p.Kappa > 0):
		return fmt.Errorf("conductivity must be positive, got %v", p.Kappa)
	case !(p.EpsilonR >= 1):
		return fmt.Errorf("relative permittivity must be at least 1, got %v", p.EpsilonR)
	case !(p.TanDelta >= 0):
		return fmt.Errorf("loss tangent must not be negative, got %v", p.TanDelta)
	}
	return nil
}

// geometry carries the raw widths together with the half dimensions the
// conformal mapping expressions are written in.
type geometry struct {
	w, s, t, wg float64
	a, b        float64 // a = w/2, b = w/2 + s
	tH          float64 // t/2
}

func (p Params) geometry() geometry {
	return geometry{
		w: p.W, s: p.S, t: p.T, wg: p.Wg,
		a: p.W / 2, b: p.W/2 + p.S,
		tH: p.T / 2,
	}
}
