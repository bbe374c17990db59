package consts

import "math"

const (
	MU0        = 4 * math.Pi * 1e-7 // Vacuum permeability (H/m)
	EPSILON0   = 8.8541878128e-12   // Vacuum permittivity (F/m)
	LIGHTSPEED = 299792458.0        // Speed of light in vacuum (m/s)
)
