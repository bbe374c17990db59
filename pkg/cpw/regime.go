package cpw

import (
	"math"

	"github.com/rnorris7756/CPW/internal/consts"
)

// inductanceMatch carries the boundary angular frequencies, asymptote levels
// and blending coefficients of the four regime series inductance fit. The
// regimes run from the uniform current distribution at DC over two
// transition bands to the fully developed skin effect.
type inductanceMatch struct {
	omega0, omega1, omega2 float64 // regime boundaries (rad/s)
	ldc, l1, l2, linf      float64 // asymptote levels (H/m)
	skin                   float64 // high frequency prefactor, L = linf + skin/sqrt(omega)
	nu1, nu2               float64 // power law exponents of the transition bands
	a0, a1, a2             float64
	a3, a4, a5             float64
}

func newInductanceMatch(p Params, g geometry, d distribution) inductanceMatch {
	var m inductanceMatch

	mk := consts.MU0 * p.Kappa
	m.omega0 = 4 / (mk * g.t * g.wg)
	m.omega1 = 4 / (mk * g.t * g.w)
	m.omega2 = 18 / (mk * g.t * g.t)

	m.linf = consts.MU0 / (4 * d.fupHalf)
	m.ldc = inductanceDC(g, g.w, g.wg)
	m.l1 = inductanceDC(g, g.w, 3*g.w/2) - consts.MU0/(4*d.f1)
	m.skin = math.Sqrt(consts.MU0/(2*p.Kappa)) * (d.flc + d.flg) / (4 * d.fupHalf * d.fupHalf)
	m.l2 = m.skin / math.Sqrt(m.omega2)

	m.nu1 = math.Log((m.ldc-m.linf)/m.l1) / math.Log(m.omega0/m.omega1)
	m.nu2 = math.Log(m.l1/m.l2) / math.Log(m.omega1/m.omega2)

	wr := g.w / g.wg
	tr := 2 * g.t / (9 * g.w)
	eta1 := wr * wr * wr * wr * m.nu1 / (4 - m.nu1)
	eta2 := wr * wr * m.nu1 / (4 - m.nu1)
	eta3 := tr * tr * tr * (m.nu2 - 0.5) / (m.nu2 + 2.5)
	eta4 := tr * (m.nu2 + 0.5) / (m.nu2 + 2.5)

	m.a3 = ((m.nu2-m.nu1)*(1+eta1)*(1-eta4) + 4*eta2 + eta4*(1-3*eta1)) /
		((m.nu1-m.nu2)*(1+eta1)*(1-eta3) + 4 - eta3*(1-3*eta1))
	m.a2 = (m.a3*(1-eta3) - eta2 - eta4) / (1 + eta1)
	m.a4 = -4.5 * g.w / g.t * (eta4 + m.a3*eta3)
	m.a5 = tr*tr*m.a3 + m.a4
	m.a1 = m.nu1/(4-m.nu1) + eta2*m.a2
	m.a0 = (1 - m.linf/m.ldc) * (m.a1 + wr*wr*m.a2)

	return m
}

// regimeOf returns the index of the frequency regime omega falls into.
// Boundaries belong to the regime below them.
func (m inductanceMatch) regimeOf(omega float64) int {
	switch {
	case omega <= m.omega0:
		return 0
	case omega <= m.omega1:
		return 1
	case omega <= m.omega2:
		return 2
	default:
		return 3
	}
}

// branch evaluates the fit formula of one regime at omega.
func (m inductanceMatch) branch(idx int, omega float64) float64 {
	switch idx {
	case 0:
		r := omega / m.omega0
		return m.ldc * (1 + m.a0*r*r)
	case 1:
		rl := m.omega0 / omega
		rh := omega / m.omega1
		return m.linf + m.l1*math.Pow(rh, m.nu1)*(1+m.a1*rl*rl+m.a2*rh*rh)
	case 2:
		rl := m.omega1 / omega
		rh := omega / m.omega2
		return m.linf + m.l2*math.Pow(rh, m.nu2)*(1+m.a3*rl*rl+m.a4*rh*rh)
	default:
		return m.linf + m.skin/math.Sqrt(omega)*(1+m.a5*m.omega2/omega)
	}
}

func (m inductanceMatch) at(omega float64) float64 {
	return m.branch(m.regimeOf(omega), omega)
}

// resistanceMatch carries the three regime series resistance fit for one
// conductor, from the DC plateau over a transition band to the skin effect
// square root law.
type resistanceMatch struct {
	omega1, omega2 float64 // regime boundaries (rad/s)
	r0, r1         float64 // DC level and transition level (Ohm/m)
	skin           float64 // high frequency prefactor, R = skin*sqrt(omega)
	nu             float64 // power law exponent of the transition band
	a1, a2, a3, a4 float64
}

// newCenterResistanceMatch builds the fit for the center conductor.
func newCenterResistanceMatch(p Params, g geometry, d distribution) resistanceMatch {
	mk := consts.MU0 * p.Kappa
	wt := (g.w + g.t) / (g.w * g.t)
	omega1 := math.Sqrt2 * 4 / (mk * g.t * g.w)
	omega2 := 8 / mk * wt * wt
	r0 := 1 / (p.Kappa * g.w * g.t)
	return newResistanceMatch(p, d, d.flc, omega1, omega2, r0)
}

// newGroundResistanceMatch builds the fit for the two ground planes in
// parallel.
func newGroundResistanceMatch(p Params, g geometry, d distribution) resistanceMatch {
	mk := consts.MU0 * p.Kappa
	wt := (2*g.wg + g.t) / (g.wg * g.t)
	omega1 := 2 / (mk * g.t * g.wg)
	omega2 := 2 / mk * wt * wt
	r0 := 1 / (2 * p.Kappa * g.wg * g.t)
	return newResistanceMatch(p, d, d.flg, omega1, omega2, r0)
}

func newResistanceMatch(p Params, d distribution, edge, omega1, omega2, r0 float64) resistanceMatch {
	m := resistanceMatch{omega1: omega1, omega2: omega2, r0: r0}
	m.skin = math.Sqrt(consts.MU0/(2*p.Kappa)) * edge / (4 * d.fupHalf * d.fupHalf)
	m.r1 = m.skin * math.Sqrt(omega2)
	m.nu = math.Log(m.r0/m.r1) / math.Log(omega1/omega2)

	gr := omega1 / omega2
	gr *= gr
	q := 0.25 * (0.5 - m.nu) * (4 - m.nu*(1-gr*gr))
	m.a4 = (gr*m.nu + q) / (4 - m.nu - q)
	m.a3 = 0.25 * (0.5 - m.nu) * (1 + m.a4)
	m.a2 = (m.a4 - m.a3) / gr
	m.a1 = m.a2 + gr*m.a3
	return m
}

// regimeOf returns the index of the frequency regime omega falls into.
// Boundaries belong to the regime below them.
func (m resistanceMatch) regimeOf(omega float64) int {
	switch {
	case omega <= m.omega1:
		return 0
	case omega <= m.omega2:
		return 1
	default:
		return 2
	}
}

// branch evaluates the fit formula of one regime at omega.
func (m resistanceMatch) branch(idx int, omega float64) float64 {
	switch idx {
	case 0:
		r := omega / m.omega1
		return m.r0 * (1 + m.a1*r*r)
	case 1:
		rl := m.omega1 / omega
		rh := omega / m.omega2
		return m.r1 * math.Pow(rh, m.nu) * (1 + m.a2*rl*rl + m.a3*rh*rh)
	default:
		r := m.omega2 / omega
		return m.skin * math.Sqrt(omega) * (1 + m.a4*r*r)
	}
}

func (m resistanceMatch) at(omega float64) float64 {
	return m.branch(m.regimeOf(omega), omega)
}

// inductanceDC is the zero frequency external plus internal inductance of a
// strip of width w1 against return strips of width w2 across the gap.
func inductanceDC(g geometry, w1, w2 float64) float64 {
	s := g.s
	return consts.MU0 / (8 * math.Pi) * (4*fluxTerm(g, w1)/(w1*w1) +
		(fluxTerm(g, w1+2*s)+fluxTerm(g, w1+2*w2+2*s)+2*fluxTerm(g, w2)-2*fluxTerm(g, w1+w2+2*s))/(w2*w2) -
		4/(w1*w2)*(fluxTerm(g, w1+w2+s)-fluxTerm(g, w1+s)+fluxTerm(g, s)-fluxTerm(g, w2+s)))
}

// fluxTerm is the mutual flux integral of two rectangular cross sections of
// thickness t whose edges are x apart.
func fluxTerm(g geometry, x float64) float64 {
	t := g.t
	xt := x / t
	tx := t / x
	return (t*t/12-x*x/2)*math.Log(1+xt*xt) +
		x*x*x*x/(12*t*t)*math.Log(1+tx*tx) -
		2*x*t/3*(math.Atan(xt)+xt*xt*math.Atan(tx))
}
