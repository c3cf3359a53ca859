package sp16

// BucklingCurve holds the coefficients of one stability curve from
// Table 7 of SP 16.13330, together with the reduced-slenderness threshold
// above which the Euler-like branch phi = 7.6/lambda_bar² applies.
type BucklingCurve struct {
	Alpha     float64
	Beta      float64
	Threshold float64
	Code      string // 'a', 'b' or 'c'
}

var (
	// CurveA — closed tubular sections (circular and rectangular tubes).
	CurveA = BucklingCurve{Alpha: 0.03, Beta: 0.06, Threshold: 3.8, Code: "a"}

	// CurveB — rolled I-beams and angles, and box sections built from
	// two channels.
	CurveB = BucklingCurve{Alpha: 0.04, Beta: 0.09, Threshold: 4.4, Code: "b"}

	// CurveC — single rolled channels.
	CurveC = BucklingCurve{Alpha: 0.04, Beta: 0.14, Threshold: 5.8, Code: "c"}
)

// Plastic-section factor c1 anchors (Table E.1): linear between
// n = Af/Aw = 0.5 (c1 = 1.07) and n = 1.0 (c1 = 1.12), clamped to
// [1.0, 1.2].
const (
	c1NLow  = 0.5
	c1Low   = 1.07
	c1NHigh = 1.0
	c1High  = 1.12
	c1Min   = 1.0
	c1Max   = 1.2
)

// C1 interpolates the plastic-section development factor for a
// flange-to-web area ratio n.
func C1(n float64) float64 {
	c1 := c1Low + (n-c1NLow)*(c1High-c1Low)/(c1NHigh-c1NLow)
	if c1 < c1Min {
		return c1Min
	}
	if c1 > c1Max {
		return c1Max
	}
	return c1
}
