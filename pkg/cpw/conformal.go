package cpw

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// conformal holds the conformal mapping moduli of the cross section and the
// thickness correction coefficients derived from them. mathext.CompleteK and
// CompleteE take the parameter m; the model coefficients are defined with
// the moduli passed as m directly, so no squaring happens here.
type conformal struct {
	k0 float64 // zero thickness modulus w/(w+2s)
	k1 float64 // modulus including the finite ground plane width
	k2 float64 // modulus of the equivalent three strip line
	kp float64 // complementary modulus sqrt(1-k0^2)

	pc0, pc1, pc2, pc3 float64
	pc4, pc5, pc6      float64

	ratio1 float64 // K(k1)/K(k1')
	ratio2 float64 // K(k2)/K(k2')
}

// ellipticRatio returns K(k)/K(k') with k' = sqrt(1-k^2).
func ellipticRatio(k float64) float64 {
	return mathext.CompleteK(k) / mathext.CompleteK(math.Sqrt(1-k*k))
}

func newConformal(g geometry) conformal {
	var c conformal

	w2s := g.w + 2*g.s
	c.k0 = g.w / w2s

	d1 := w2s + 2*g.wg
	r1o := w2s / d1
	r1i := g.w / d1
	c.k1 = c.k0 * math.Sqrt((1-r1o*r1o)/(1-r1i*r1i))

	d2 := 4*g.w + 2*g.s
	r2o := w2s / d2
	r2i := g.w / d2
	c.k2 = c.k0 * math.Sqrt((1-r2o*r2o)/(1-r2i*r2i))

	c.kp = math.Sqrt(1 - c.k0*c.k0)

	a, b := g.a, g.b
	kkp := mathext.CompleteK(c.kp)
	ekp := mathext.CompleteE(c.kp)

	c.pc0 = b / (2 * a * kkp * kkp)
	c.pc1 = 1 + math.Log(8*math.Pi*a/(a+b)) + a*math.Log(b/a)/(a+b)
	c.pc2 = c.pc1 - 2*a*kkp*kkp/b
	c.pc3 = 2 * b * b * ekp / (a * (b + a) * kkp)
	c.pc4 = (b - a) / (b + a) * (math.Log(8*math.Pi*a/(a+b)) + a/b)
	c.pc5 = (b - a) / (b + a) * math.Log(3)
	c.pc6 = (b-a)/(b+a)*math.Log(24*math.Pi*b*(a+b)/((b-a)*(b-a))) - b*math.Log(b/a)/(b+a)

	c.ratio1 = ellipticRatio(c.k1)
	c.ratio2 = ellipticRatio(c.k2)

	return c
}

// kineticFactor is the dimensionless geometry factor of the kinetic
// inductance for a thin film with t below the penetration depth scale.
func kineticFactor(g geometry, c conformal) float64 {
	kk0 := mathext.CompleteK(c.k0)
	w2s := g.w + 2*g.s
	return 1 / (2 * c.k0 * c.k0 * kk0 * kk0) *
		(-math.Log(g.t/(4*g.w)) -
			g.w/w2s*math.Log(g.t/(4*w2s)) +
			2*(g.w+g.s)/w2s*math.Log(g.s/(g.w+g.s)))
}
