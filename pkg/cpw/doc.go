// Package cpw computes the frequency dependent transmission line parameters
// of a superconducting coplanar waveguide.
//
// The model follows the quasi-TEM description of W. Heinrich, "Quasi-TEM
// description of MMIC coplanar lines including conductor-loss effects",
// IEEE Trans. Microwave Theory Tech., vol. 41, no. 1, 1993. The series
// inductance and resistance per length have closed form asymptotes in
// separate frequency regimes, stitched together with power law exponents and
// blending coefficients so that the value stays continuous across the regime
// boundaries. The shunt capacitance and conductance come from the zero
// thickness conformal mapping result with a finite thickness correction, and
// a thin film kinetic inductance term accounts for the superconducting
// penetration depth.
//
// All inputs and outputs are SI units and frequencies are in Hz. A Line is
// an immutable snapshot of one cross section, built once by New and safe for
// concurrent use. Methods taking a []float64 of frequencies return one value
// per input; the At variants are the single frequency form.
package cpw
