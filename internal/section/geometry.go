package section

import "math"

// ComputeIBeam derives the properties of a parametric I-beam. Area and
// inertia sum two flange contributions and one web contribution.
func ComputeIBeam(h, b, tw, tf float64) (*Profile, error) {
	if err := checkPositive(dim{"h", h}, dim{"b", b}, dim{"tw", tw}, dim{"tf", tf}); err != nil {
		return nil, err
	}
	if tw >= b {
		return nil, geomErrf("web thickness %.1f mm must be less than flange width %.1f mm", tw, b)
	}
	if 2*tf >= h {
		return nil, geomErrf("two flanges (%.1f mm) must be thinner than the section height (%.1f mm)", 2*tf, h)
	}

	af := b * tf
	hWeb := h - 2*tf
	aw := hWeb * tw
	area := 2*af + aw

	// Strong axis: full rectangle minus the two notches beside the web.
	bInner := (b - tw) / 2
	ix := b*math.Pow(h, 3)/12 - 2*bInner*math.Pow(hWeb, 3)/12

	// Weak axis: flanges about their own centroids plus the web.
	iy := 2*tf*math.Pow(b, 3)/12 + hWeb*math.Pow(tw, 3)/12

	// First moment of the half-section: one flange plus half the web.
	distF := h/2 - tf/2
	halfWeb := hWeb / 2
	sx := af*distF + tw*halfWeb*(halfWeb/2)

	return &Profile{
		Shape: IBeam,
		Dims:  Dimensions{H: h, B: b, Tw: tw, Tf: tf},
		A:     area,
		Ix:    ix,
		Iy:    iy,
		RadX:  math.Sqrt(ix / area),
		RadY:  math.Sqrt(iy / area),
		Wx:    ix / (h / 2),
		Sx:    sx,
		Af:    af,
		Aw:    aw,
		Tw:    tw,
	}, nil
}

// ComputeChannel derives the properties of a parametric channel with
// parallel flange faces. The channel is symmetric about the horizontal
// axis but not about the vertical axis through its web, so Iy is built
// from the area-weighted centroid offset and the parallel-axis theorem.
func ComputeChannel(h, b, tw, tf float64) (*Profile, error) {
	if err := checkPositive(dim{"h", h}, dim{"b", b}, dim{"tw", tw}, dim{"tf", tf}); err != nil {
		return nil, err
	}
	if tw >= b {
		return nil, geomErrf("web thickness %.1f mm must be less than flange width %.1f mm", tw, b)
	}
	if 2*tf >= h {
		return nil, geomErrf("two flanges (%.1f mm) must be thinner than the section height (%.1f mm)", 2*tf, h)
	}

	aFlanges := 2 * b * tf
	hWeb := h - 2*tf
	aw := hWeb * tw
	area := aFlanges + aw

	ix := b*math.Pow(h, 3)/12 - (b-tw)*math.Pow(hWeb, 3)/12

	// Centroid offset from the web's outer face, area-weighted across the
	// flange and web sub-areas.
	xc := (aFlanges*(b/2) + aw*(tw/2)) / area

	iyFlanges := 2 * (tf*math.Pow(b, 3)/12 + b*tf*math.Pow(b/2-xc, 2))
	iyWeb := hWeb*math.Pow(tw, 3)/12 + aw*math.Pow(tw/2-xc, 2)
	iy := iyFlanges + iyWeb

	distF := h/2 - tf/2
	halfWeb := hWeb / 2
	sx := b*tf*distF + tw*halfWeb*(halfWeb/2)

	return &Profile{
		Shape: Channel,
		Dims:  Dimensions{H: h, B: b, Tw: tw, Tf: tf},
		A:     area,
		Ix:    ix,
		Iy:    iy,
		RadX:  math.Sqrt(ix / area),
		RadY:  math.Sqrt(iy / area),
		Wx:    ix / (h / 2),
		Sx:    sx,
		Af:    b * tf,
		Aw:    aw,
		Tw:    tw,
	}, nil
}

// ComputeRectTube derives the properties of a rectangular hollow section
// as outer-rectangle properties minus inner-hole properties.
func ComputeRectTube(h, b, t float64) (*Profile, error) {
	if err := checkPositive(dim{"h", h}, dim{"b", b}, dim{"t", t}); err != nil {
		return nil, err
	}
	hIn := h - 2*t
	bIn := b - 2*t
	if hIn <= 0 || bIn <= 0 {
		return nil, geomErrf("wall thickness %.1f mm leaves no hollow interior for %gx%g mm tube", t, h, b)
	}

	area := h*b - hIn*bIn
	ix := b*math.Pow(h, 3)/12 - bIn*math.Pow(hIn, 3)/12
	iy := h*math.Pow(b, 3)/12 - hIn*math.Pow(bIn, 3)/12
	sx := b*h*h/8 - bIn*hIn*hIn/8

	return &Profile{
		Shape: RectTube,
		Dims:  Dimensions{H: h, B: b, T: t},
		A:     area,
		Ix:    ix,
		Iy:    iy,
		RadX:  math.Sqrt(ix / area),
		RadY:  math.Sqrt(iy / area),
		Wx:    ix / (h / 2),
		Sx:    sx,
		Tw:    2 * t, // both webs resist shear
	}, nil
}

// ComputeCircTube derives the properties of a circular hollow section.
// Shear web thickness is left at zero: the thin-walled shear formula for
// pipes differs from the Q·Sx/(Ix·tw) form and is not applied here.
func ComputeCircTube(d, t float64) (*Profile, error) {
	if err := checkPositive(dim{"d", d}, dim{"t", t}); err != nil {
		return nil, err
	}
	dIn := d - 2*t
	if dIn <= 0 {
		return nil, geomErrf("wall thickness %.1f mm leaves no hollow interior for diameter %.1f mm", t, d)
	}

	area := math.Pi * (d*d - dIn*dIn) / 4
	ix := math.Pi * (math.Pow(d, 4) - math.Pow(dIn, 4)) / 64
	rOut := d / 2
	rIn := dIn / 2
	sx := 2.0 / 3.0 * (math.Pow(rOut, 3) - math.Pow(rIn, 3))

	rad := math.Sqrt(ix / area)
	return &Profile{
		Shape: CircTube,
		Dims:  Dimensions{D: d, T: t},
		A:     area,
		Ix:    ix,
		Iy:    ix,
		RadX:  rad,
		RadY:  rad,
		Wx:    ix / (d / 2),
		Sx:    sx,
	}, nil
}

type dim struct {
	name string
	val  float64
}

func checkPositive(dims ...dim) error {
	for _, d := range dims {
		if d.val <= 0 {
			return geomErrf("dimension %s must be positive, got %.2f mm", d.name, d.val)
		}
	}
	return nil
}
