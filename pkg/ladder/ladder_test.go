package ladder

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/rnorris7756/CPW/pkg/cpw"
)

func defaultLine(t *testing.T) *cpw.Line {
	t.Helper()
	l, err := cpw.New(cpw.DefaultParams())
	if err != nil {
		t.Fatalf("cpw.New: %v", err)
	}
	return l
}

// analyticInput is the textbook input impedance of a line segment,
// Zc*tanh(gamma*l) shorted and Zc*coth(gamma*l) open.
func analyticInput(l *cpw.Line, f, length float64, term Termination) complex128 {
	w := 2 * math.Pi * f
	series := complex(l.RlAt(f), w*l.LlAt(f))
	shunt := complex(l.GlAt(f), w*l.ClAt(f))
	zc := cmplx.Sqrt(series / shunt)
	tanh := cmplx.Tanh(cmplx.Sqrt(series*shunt) * complex(length, 0))
	if term == Open {
		return zc / tanh
	}
	return zc * tanh
}

func TestShortedLadderMatchesLineTheory(t *testing.T) {
	line := defaultLine(t)
	length := 5e-3

	net, err := New(line, length, 200, Short)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	freqs := []float64{1e9, 3e9}
	zin, err := net.InputImpedance(freqs)
	if err != nil {
		t.Fatalf("InputImpedance: %v", err)
	}
	if len(zin) != len(freqs) {
		t.Fatalf("got %d impedances for %d frequencies", len(zin), len(freqs))
	}

	for i, f := range freqs {
		want := analyticInput(line, f, length, Short)
		rel := cmplx.Abs(zin[i]-want) / cmplx.Abs(want)
		if rel > 0.02 {
			t.Errorf("Zin(%g Hz) = %v, want %v (rel diff %.3g)", f, zin[i], want, rel)
		}
	}
}

func TestOpenLadderMatchesLineTheory(t *testing.T) {
	line := defaultLine(t)
	length := 5e-3

	net, err := New(line, length, 200, Open)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	f := 1e9
	zin, err := net.InputImpedance([]float64{f})
	if err != nil {
		t.Fatalf("InputImpedance: %v", err)
	}

	want := analyticInput(line, f, length, Open)
	rel := cmplx.Abs(zin[0]-want) / cmplx.Abs(want)
	if rel > 0.02 {
		t.Errorf("Zin(%g Hz) = %v, want %v (rel diff %.3g)", f, zin[0], want, rel)
	}
}

// A shorted quarter wave section looks like a parallel resonator from the
// input, so the impedance magnitude at resonance towers over the one far
// below it.
func TestQuarterWaveResonancePeak(t *testing.T) {
	line := defaultLine(t)
	length := 5e-3

	net, err := New(line, length, 400, Short)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	fres := line.ResonanceFrequencyLambda4(length)
	zin, err := net.InputImpedance([]float64{1e9, fres})
	if err != nil {
		t.Fatalf("InputImpedance: %v", err)
	}

	low, peak := cmplx.Abs(zin[0]), cmplx.Abs(zin[1])
	if !(peak > 10*low) {
		t.Errorf("|Zin| at resonance = %g, off resonance = %g, want a clear peak", peak, low)
	}
}

func TestNewRejectsBadArguments(t *testing.T) {
	line := defaultLine(t)

	cases := []struct {
		name     string
		line     *cpw.Line
		length   float64
		sections int
		term     Termination
	}{
		{"nil line", nil, 5e-3, 100, Short},
		{"zero length", line, 0, 100, Short},
		{"negative length", line, -1e-3, 100, Short},
		{"no sections", line, 5e-3, 0, Short},
		{"unknown termination", line, 5e-3, 100, Termination(42)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.line, tc.length, tc.sections, tc.term); err == nil {
				t.Error("New accepted the arguments")
			}
		})
	}
}
