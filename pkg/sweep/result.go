package sweep

import (
	"fmt"
	"io"

	"github.com/rnorris7756/CPW/pkg/cpw"
	"github.com/rnorris7756/CPW/pkg/util"
)

// Result holds one column per line quantity for a swept frequency list.
type Result struct {
	Params cpw.Params
	Freqs  []float64

	Ll       []float64
	Rl       []float64
	Cl       []float64
	Gl       []float64
	Z0       []float64
	Alpha    []float64
	Beta     []float64
	Velocity []float64
}

// Run evaluates every line quantity at each frequency.
func Run(line *cpw.Line, freqs []float64) *Result {
	return &Result{
		Params:   line.Params(),
		Freqs:    freqs,
		Ll:       line.Ll(freqs),
		Rl:       line.Rl(freqs),
		Cl:       line.Cl(freqs),
		Gl:       line.Gl(freqs),
		Z0:       line.Z0(freqs),
		Alpha:    line.Alpha(freqs),
		Beta:     line.Beta(freqs),
		Velocity: line.Velocity(freqs),
	}
}

// WriteTable renders the sweep as a fixed width text table.
func (r *Result) WriteTable(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%-11s %8s %8s %8s %8s %8s %8s %8s %8s\n",
		"Frequency", "L[H/m]", "R[Ohm/m]", "C[F/m]", "G[S/m]", "Z0[Ohm]", "a[1/m]", "b[rad/m]", "v/c")
	if err != nil {
		return err
	}
	for i := range r.Freqs {
		_, err := fmt.Fprintf(w, "%s %s %s %s %s %s %s %s %s\n",
			util.FormatFrequency(r.Freqs[i]),
			util.FormatMagnitude(r.Ll[i]),
			util.FormatMagnitude(r.Rl[i]),
			util.FormatMagnitude(r.Cl[i]),
			util.FormatMagnitude(r.Gl[i]),
			util.FormatMagnitude(r.Z0[i]),
			util.FormatMagnitude(r.Alpha[i]),
			util.FormatMagnitude(r.Beta[i]),
			util.FormatMagnitude(r.Velocity[i]))
		if err != nil {
			return err
		}
	}
	return nil
}
