package cpw

import (
	"fmt"
	"math"
	"testing"
)

func TestModuliOrdering(t *testing.T) {
	c := newConformal(DefaultParams().geometry())

	checkClose(t, "k0", c.k0, 19.0/42.0, 1e-12)
	if !(c.k1 > 0 && c.k1 < c.k0) {
		t.Errorf("k1 = %g, want inside (0, k0 = %g)", c.k1, c.k0)
	}
	if !(c.k2 > 0 && c.k2 < c.k0) {
		t.Errorf("k2 = %g, want inside (0, k0 = %g)", c.k2, c.k0)
	}
	// Wide ground planes push k1 towards k0 and keep k2 below it.
	if !(c.k2 < c.k1) {
		t.Errorf("k2 = %g, want below k1 = %g for wide ground planes", c.k2, c.k1)
	}
	if !(c.pc0 > 0) {
		t.Errorf("pc0 = %g, want positive", c.pc0)
	}
}

func TestEllipticRatioReciprocal(t *testing.T) {
	for _, k := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		kp := math.Sqrt(1 - k*k)
		checkClose(t, "ratio(k)*ratio(k')", ellipticRatio(k)*ellipticRatio(kp), 1, 1e-12)
	}
}

// A gap a thousand times narrower than the conductor sits right next to the
// a == b singularity of the conformal mapping. The mapping coefficients and
// the shunt quantities built from them must stay finite there. The series
// fit coefficients do not: the edge factors turn negative outside the model
// validity range, so Ll and Rl are not checked.
func TestNarrowGapStaysFinite(t *testing.T) {
	p := DefaultParams()
	p.S = 1e-9
	l := mustLine(t, p)

	checkFinite(t, "k0", l.conf.k0)
	checkFinite(t, "k1", l.conf.k1)
	checkFinite(t, "k2", l.conf.k2)
	for i, pc := range []float64{l.conf.pc0, l.conf.pc1, l.conf.pc2, l.conf.pc3, l.conf.pc4, l.conf.pc5, l.conf.pc6} {
		checkFinite(t, fmt.Sprintf("pc%d", i), pc)
	}
	checkFinite(t, "flc", l.dist.flc)
	checkFinite(t, "flg", l.dist.flg)
	checkFinite(t, "fupFull", l.dist.fupFull)
	checkFinite(t, "Cl", l.ClAt(9e9))
	checkFinite(t, "Gl", l.GlAt(9e9))
}

func TestKineticFactorPositive(t *testing.T) {
	g := DefaultParams().geometry()
	c := newConformal(g)
	if got := kineticFactor(g, c); !(got > 0) {
		t.Errorf("kineticFactor = %g, want positive", got)
	}
}
