package cpw

import "math"

// distribution holds the current distribution factors of the cross section.
// flc and flg describe the current crowding at the center and ground
// conductor edges and have dimension 1/m. The remaining factors are
// dimensionless: fupHalf and fupFull are the total factor evaluated at half
// and full metal thickness, flow is the zero thickness limit.
type distribution struct {
	flc     float64
	flg     float64
	fupHalf float64
	fupFull float64
	flow    float64
	f1      float64
}

func newDistribution(g geometry, c conformal) distribution {
	var d distribution
	d.flc = edgeFactorCenter(g, c)
	d.flg = edgeFactorGround(g, c)
	d.fupHalf = totalFactor(g, c, g.tH)
	d.fupFull = totalFactor(g, c, g.t)
	d.flow = c.ratio1
	d.f1 = d.fupHalf + c.ratio2 - c.ratio1
	return d
}

// edgeFactorCenter evaluates the current distribution factor of the center
// conductor at half thickness. The thin branch holds for t/2 <= s/2.
func edgeFactorCenter(g geometry, c conformal) float64 {
	a, b, s, th := g.a, g.b, g.s, g.tH
	if th <= s/2 {
		lt := math.Log(2 * th / s)
		fA := math.Pi*b + b*math.Log(8*math.Pi*a/(a+b)) - (b-a)*math.Log((b-a)/(b+a)) - b*lt
		fB := c.pc1*c.pc3 - c.pc2 - b*c.pc4/a + c.pc5 +
			(c.pc2-c.pc3+b/a-1-c.pc5)*lt
		fC := c.pc3*(1-3*c.pc1/2) + 3*c.pc1/2 - 2*c.pc2 + 1 + 3*b*c.pc4/(2*a) -
			b*(b-a)/(a*(b+a)) +
			(2*c.pc2+c.pc1*(c.pc3-1)-b*c.pc4/a)*lt
		return c.pc0 / s * (fA/(a+b) + th/s*fB + th*th/(s*s)*fC)
	}
	return 1/(2*s) + th/(s*s) +
		c.pc0/s*(math.Pi*b/(a+b)+c.pc6/2+
			(-c.pc1+c.pc3*(c.pc1+2)-b*c.pc4/a-2*(a*a+b*b)/(a*(a+b)))/8)
}

// edgeFactorGround is the counterpart of edgeFactorCenter for the ground
// planes.
func edgeFactorGround(g geometry, c conformal) float64 {
	a, b, s, th := g.a, g.b, g.s, g.tH
	if th <= s/2 {
		lt := math.Log(2 * th / s)
		fA := math.Pi*a + a*math.Log(8*math.Pi*b/(b-a)) - b*math.Log((b-a)/(b+a)) - a*lt
		fB := a*c.pc1*c.pc3/b + (1-a/b)*c.pc1 - c.pc2 - c.pc4 - c.pc5 +
			(c.pc2-a*c.pc3/b+a/b-1+c.pc5)*lt
		fC := a*c.pc3/b*(1-3*c.pc1/2) + 3*a*c.pc1/(2*b) - 2*c.pc2 + 2 - a/b +
			3*c.pc4/2 - (b-a)/(b+a) +
			(2*c.pc2+a*c.pc1/b*(c.pc3-1)-c.pc4)*lt
		return c.pc0 / s * (fA/(a+b) + th/s*fB + th*th/(s*s)*fC)
	}
	return 1/(2*s) + th/(s*s) +
		c.pc0/s*(math.Pi*a/(a+b)+c.pc6/2+
			(-a*c.pc1/b+a*c.pc3/b*(c.pc1+2)-c.pc4-2*(a*a+b*b)/(b*(a+b)))/8)
}

// totalFactor evaluates the thickness corrected total current distribution
// factor at thickness parameter th. The thin branch holds for th <= s/2.
func totalFactor(g geometry, c conformal, th float64) float64 {
	s := g.s
	if th <= s/2 {
		x := th / s
		lt := math.Log(2 * th / s)
		return c.ratio1 + c.pc0*(x*(c.pc1-lt)+x*x*(1-3*c.pc2/2+c.pc2*lt))
	}
	return c.ratio1 + c.pc0*(c.pc2+2)/8 + th/s
}
