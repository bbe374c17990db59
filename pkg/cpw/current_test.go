package cpw

import "testing"

func TestFactorOrdering(t *testing.T) {
	l := mustLine(t, DefaultParams())
	d := l.dist

	if !(d.flow > 0) {
		t.Errorf("flow = %g, want positive", d.flow)
	}
	if !(d.fupHalf > d.flow) {
		t.Errorf("fupHalf = %g, want above flow = %g", d.fupHalf, d.flow)
	}
	if !(d.fupFull > d.fupHalf) {
		t.Errorf("fupFull = %g, want above fupHalf = %g", d.fupFull, d.fupHalf)
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"flc", d.flc},
		{"flg", d.flg},
		{"f1", d.f1},
	} {
		if !(c.v > 0) {
			t.Errorf("%s = %g, want positive", c.name, c.v)
		}
	}
}

// Metal thicker than the gap takes the thick film branches of every factor.
func TestThickMetalBranches(t *testing.T) {
	p := DefaultParams()
	p.T = 2e-6
	p.S = 1e-6
	l := mustLine(t, p)
	d := l.dist

	for _, c := range []struct {
		name string
		v    float64
	}{
		{"flc", d.flc},
		{"flg", d.flg},
		{"fupHalf", d.fupHalf},
		{"fupFull", d.fupFull},
	} {
		checkFinite(t, c.name, c.v)
		if !(c.v > 0) {
			t.Errorf("%s = %g, want positive", c.name, c.v)
		}
	}
	if !(d.fupFull > d.fupHalf) {
		t.Errorf("fupFull = %g, want above fupHalf = %g", d.fupFull, d.fupHalf)
	}
}
