// Package sweep evaluates a coplanar waveguide over a frequency range and
// renders the results as a text table or an xlsx workbook.
package sweep

import (
	"fmt"
	"math"
)

// Scale selects how Points spaces a frequency range.
type Scale string

const (
	Dec Scale = "DEC"
	Oct Scale = "OCT"
	Lin Scale = "LIN"
)

// Points builds a frequency list from start to stop in Hz. For Dec and Oct,
// n counts points per decade or octave and the list ends at the last point
// not above stop. For Lin, n is the total number of points including both
// ends.
func Points(start, stop float64, n int, scale Scale) ([]float64, error) {
	if !(start > 0) {
		return nil, fmt.Errorf("sweep: start frequency must be positive, got %g", start)
	}
	if !(stop > start) {
		return nil, fmt.Errorf("sweep: stop frequency must be above start, got %g and %g", start, stop)
	}

	switch scale {
	case Dec, Oct:
		if n < 1 {
			return nil, fmt.Errorf("sweep: need at least one point per interval, got %d", n)
		}
		base := 10.0
		span := math.Log10(stop / start)
		if scale == Oct {
			base = 2.0
			span = math.Log2(stop / start)
		}
		total := int(float64(n) * span)
		freqs := make([]float64, 0, total+1)
		for i := 0; i <= total; i++ {
			freq := start * math.Pow(base, float64(i)/float64(n))
			if freq > stop {
				break
			}
			freqs = append(freqs, freq)
		}
		return freqs, nil
	case Lin:
		if n < 2 {
			return nil, fmt.Errorf("sweep: need at least two points, got %d", n)
		}
		step := (stop - start) / float64(n-1)
		freqs := make([]float64, n)
		for i := range freqs {
			freqs[i] = start + float64(i)*step
		}
		return freqs, nil
	default:
		return nil, fmt.Errorf("sweep: unknown scale %q", scale)
	}
}
