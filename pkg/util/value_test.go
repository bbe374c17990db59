package util

import (
	"math"
	"testing"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"19u", 19e-6},
		{"19um", 19e-6},
		{"100n", 100e-9},
		{"100nm", 100e-9},
		{"11.5u", 11.5e-6},
		{"5mm", 5e-3},
		{"200u", 200e-6},
		{"3.53e50", 3.53e50},
		{"9G", 9e9},
		{"1meg", 1e6},
		{"2K", 2e3},
		{"0.005", 0.005},
		{"-3.5m", -3.5e-3},
		{"  40n ", 40e-9},
	}
	for _, tc := range cases {
		got, err := ParseValue(tc.in)
		if err != nil {
			t.Errorf("ParseValue(%q): %v", tc.in, err)
			continue
		}
		if math.Abs(got-tc.want) > math.Abs(tc.want)*1e-12 {
			t.Errorf("ParseValue(%q) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestParseValueRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "u19", "1.2.3", "10 u", "1.5GHz"} {
		if got, err := ParseValue(in); err == nil {
			t.Errorf("ParseValue(%q) = %g, want an error", in, got)
		}
	}
}
