// Package ladder approximates a coplanar waveguide segment by a chain of
// lumped RLGC sections and solves the resulting network by modified nodal
// analysis. It serves as an independent cross check of the closed form line
// characteristics: the input impedance of a fine ladder converges to
// Zc*tanh(gamma*l) for a shorted segment.
package ladder

import (
	"fmt"
	"math"

	"github.com/rnorris7756/CPW/pkg/cpw"
	"github.com/rnorris7756/CPW/pkg/matrix"
)

// Termination selects what the far end of the segment connects to.
type Termination int

const (
	Short Termination = iota
	Open
)

// Network is a transmission line segment cut into equal lumped sections.
// Each section is a series impedance R dz + jwL dz followed by a shunt
// admittance G dz + jwC dz at its far node. The near end is driven by an
// ideal 1 V source.
type Network struct {
	line     *cpw.Line
	length   float64
	sections int
	term     Termination
}

func New(line *cpw.Line, length float64, sections int, term Termination) (*Network, error) {
	if line == nil {
		return nil, fmt.Errorf("ladder: line must not be nil")
	}
	if !(length > 0) {
		return nil, fmt.Errorf("ladder: length must be positive, got %g", length)
	}
	if sections < 1 {
		return nil, fmt.Errorf("ladder: need at least one section, got %d", sections)
	}
	if term != Short && term != Open {
		return nil, fmt.Errorf("ladder: unknown termination %d", term)
	}
	return &Network{line: line, length: length, sections: sections, term: term}, nil
}

// InputImpedance solves the network at each frequency and returns the
// impedance seen by the source. Frequencies must be positive.
func (n *Network) InputImpedance(freqs []float64) ([]complex128, error) {
	// The drive node is 1. A shorted segment grounds the far node of the
	// last section, an open segment keeps it as an extra unknown. One more
	// row carries the voltage source branch current.
	nodes := n.sections
	if n.term == Open {
		nodes = n.sections + 1
	}
	size := nodes + 1
	branch := size

	mat, err := matrix.NewNodal(size)
	if err != nil {
		return nil, err
	}
	defer mat.Destroy()

	dz := n.length / float64(n.sections)
	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		w := 2 * math.Pi * f
		ySeries := 1 / complex(n.line.RlAt(f)*dz, w*n.line.LlAt(f)*dz)
		yShunt := complex(n.line.GlAt(f)*dz, w*n.line.ClAt(f)*dz)

		mat.Clear()
		for k := 1; k <= n.sections; k++ {
			far := k + 1
			if n.term == Short && k == n.sections {
				far = 0
			}
			mat.Add(k, k, ySeries)
			mat.Add(far, far, ySeries)
			mat.Add(k, far, -ySeries)
			mat.Add(far, k, -ySeries)
			mat.Add(far, far, yShunt)
		}
		mat.Add(branch, 1, 1)
		mat.Add(1, branch, 1)
		mat.AddRHS(branch, 1)

		if err := mat.Solve(); err != nil {
			return nil, fmt.Errorf("ladder: solving at %g Hz: %v", f, err)
		}
		out[i] = -1 / mat.Solution(branch)
	}
	return out, nil
}

// Length returns the physical length of the segment in m.
func (n *Network) Length() float64 { return n.length }

// Sections returns the number of lumped sections.
func (n *Network) Sections() int { return n.sections }
