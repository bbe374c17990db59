package cpw

import (
	"math"
	"testing"
)

func TestDefaultParamsBuild(t *testing.T) {
	l, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("New(DefaultParams()): %v", err)
	}
	if l == nil {
		t.Fatal("New returned a nil line")
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero width", func(p *Params) { p.W = 0 }},
		{"negative gap", func(p *Params) { p.S = -1e-6 }},
		{"zero thickness", func(p *Params) { p.T = 0 }},
		{"zero ground width", func(p *Params) { p.Wg = 0 }},
		{"zero penetration depth", func(p *Params) { p.Lambda0 = 0 }},
		{"zero conductivity", func(p *Params) { p.Kappa = 0 }},
		{"permittivity below one", func(p *Params) { p.EpsilonR = 0.5 }},
		{"negative loss tangent", func(p *Params) { p.TanDelta = -1e-4 }},
		{"NaN width", func(p *Params) { p.W = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			if _, err := New(p); err == nil {
				t.Errorf("New accepted %+v", p)
			}
		})
	}
}

func TestWithParamsLeavesOriginalUntouched(t *testing.T) {
	orig := mustLine(t, DefaultParams())
	c0 := orig.ClAt(1e9)

	p := DefaultParams()
	p.S = 20e-6
	wide, err := orig.WithParams(p)
	if err != nil {
		t.Fatalf("WithParams: %v", err)
	}
	if got := orig.ClAt(1e9); got != c0 {
		t.Errorf("original capacitance changed from %g to %g", c0, got)
	}
	if wide.ClAt(1e9) == c0 {
		t.Error("widening the gap did not change the capacitance")
	}
	if got := wide.Params().S; got != 20e-6 {
		t.Errorf("Params().S = %g, want %g", got, 20e-6)
	}
}
