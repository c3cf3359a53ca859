package section

import (
	"fmt"
	"sort"
)

// Catalog row types keep the published units of the source standards:
// dimensions in mm, areas in cm², inertia in cm⁴, moduli in cm³, radii in
// cm. Values are converted to mm-based units on lookup.

type rolledRow struct {
	H, B, Tw, Tf float64 // mm
	A            float64 // cm²
	Ix           float64 // cm⁴
	Wx           float64 // cm³
	Sx           float64 // cm³
	RadX         float64 // cm
	Iy           float64 // cm⁴
	RadY         float64 // cm
}

type angleRow struct {
	B, T float64 // mm
	A    float64 // cm²
	Ix   float64 // cm⁴
	RadX float64 // cm
	IMin float64 // cm, minor principal axis
}

type pipeRow struct {
	D, T float64 // mm
}

// GOST 8239-89 hot-rolled I-beams.
var gost8239 = map[string]rolledRow{
	"I10": {100, 55, 4.5, 7.2, 12.0, 198, 39.7, 23.0, 4.06, 17.9, 1.22},
	"I12": {120, 64, 4.8, 7.3, 14.7, 350, 58.4, 33.7, 4.88, 27.9, 1.38},
	"I14": {140, 73, 4.9, 7.5, 17.4, 572, 81.7, 46.8, 5.73, 41.9, 1.55},
	"I16": {160, 81, 5.0, 7.8, 20.2, 873, 109, 62.3, 6.57, 58.6, 1.70},
	"I18": {180, 90, 5.1, 8.1, 23.4, 1290, 143, 81.4, 7.42, 82.6, 1.88},
	"I20": {200, 100, 5.2, 8.4, 26.8, 1840, 184, 104, 8.28, 115, 2.07},
	"I22": {220, 110, 5.4, 8.7, 30.6, 2550, 232, 131, 9.13, 157, 2.27},
	"I24": {240, 115, 5.6, 9.5, 34.8, 3460, 289, 163, 9.97, 198, 2.37},
	"I27": {270, 125, 6.0, 9.8, 40.2, 5010, 371, 210, 11.2, 260, 2.54},
	"I30": {300, 135, 6.5, 10.2, 46.5, 7080, 472, 268, 12.3, 337, 2.69},
	"I36": {360, 145, 7.5, 12.3, 61.9, 13380, 743, 423, 14.7, 516, 2.89},
	"I45": {450, 160, 9.0, 14.2, 84.7, 27696, 1231, 708, 18.1, 808, 3.09},
}

// GOST 8240-97 hot-rolled channels, parallel-flange series.
var gost8240 = map[string]rolledRow{
	"C10": {100, 46, 4.5, 7.6, 10.9, 174, 34.8, 20.4, 3.99, 20.4, 1.37},
	"C12": {120, 52, 4.8, 7.8, 13.3, 304, 50.6, 29.6, 4.78, 31.2, 1.53},
	"C14": {140, 58, 4.9, 8.1, 15.6, 491, 70.2, 40.8, 5.60, 45.4, 1.70},
	"C16": {160, 64, 5.0, 8.4, 18.1, 747, 93.4, 54.1, 6.42, 63.3, 1.87},
	"C18": {180, 70, 5.1, 8.7, 20.7, 1090, 121, 69.8, 7.24, 86.0, 2.04},
	"C20": {200, 76, 5.2, 9.0, 23.4, 1520, 152, 87.8, 8.07, 113, 2.20},
	"C24": {240, 90, 5.6, 10.0, 30.6, 2900, 242, 139, 9.73, 208, 2.60},
	"C30": {300, 100, 6.5, 11.0, 40.5, 5810, 387, 224, 12.0, 327, 2.84},
}

// GOST 8509-93 hot-rolled equal-leg angles. IMin is the radius of
// gyration about the minor principal axis, the one that governs member
// stability.
var gost8509 = map[string]angleRow{
	"L50x3":   {50, 3, 2.96, 7.11, 1.55, 1.00},
	"L50x4":   {50, 4, 3.89, 9.21, 1.54, 0.99},
	"L50x5":   {50, 5, 4.80, 11.20, 1.53, 0.98},
	"L50x6":   {50, 6, 5.69, 13.07, 1.52, 0.98},
	"L56x4":   {56, 4, 4.38, 13.10, 1.73, 1.11},
	"L56x5":   {56, 5, 5.41, 15.97, 1.72, 1.10},
	"L63x4":   {63, 4, 4.96, 18.86, 1.95, 1.25},
	"L63x5":   {63, 5, 6.13, 23.10, 1.94, 1.25},
	"L63x6":   {63, 6, 7.28, 27.06, 1.93, 1.24},
	"L70x4.5": {70, 4.5, 6.20, 29.04, 2.16, 1.39},
	"L70x5":   {70, 5, 6.86, 31.94, 2.16, 1.39},
	"L70x6":   {70, 6, 8.15, 37.58, 2.15, 1.38},
	"L70x7":   {70, 7, 9.42, 42.98, 2.14, 1.37},
	"L70x8":   {70, 8, 10.67, 48.16, 2.12, 1.37},
	"L75x5":   {75, 5, 7.39, 39.53, 2.31, 1.49},
	"L75x6":   {75, 6, 8.78, 46.57, 2.30, 1.48},
	"L75x7":   {75, 7, 10.15, 53.34, 2.29, 1.47},
	"L75x8":   {75, 8, 11.50, 59.84, 2.28, 1.47},
	"L75x9":   {75, 9, 12.83, 66.10, 2.27, 1.46},
	"L80x5.5": {80, 5.5, 8.63, 52.68, 2.47, 1.59},
	"L80x6":   {80, 6, 9.38, 56.97, 2.47, 1.58},
	"L80x7":   {80, 7, 10.85, 65.31, 2.45, 1.58},
	"L80x8":   {80, 8, 12.30, 73.36, 2.44, 1.57},
	"L90x6":   {90, 6, 10.61, 82.10, 2.78, 1.79},
	"L90x7":   {90, 7, 12.28, 94.30, 2.77, 1.78},
	"L90x8":   {90, 8, 13.93, 106.11, 2.76, 1.77},
	"L90x9":   {90, 9, 15.60, 118.00, 2.75, 1.77},
	"L100x7":  {100, 7, 13.75, 130.59, 3.08, 1.98},
	"L100x8":  {100, 8, 15.60, 147.19, 3.07, 1.98},
	"L100x10": {100, 10, 19.24, 178.95, 3.05, 1.96},
	"L100x12": {100, 12, 22.80, 208.90, 3.03, 1.95},
	"L110x7":  {110, 7, 15.15, 175.61, 3.40, 2.19},
	"L110x8":  {110, 8, 17.20, 198.17, 3.39, 2.18},
	"L125x8":  {125, 8, 19.69, 294.36, 3.87, 2.49},
	"L125x9":  {125, 9, 22.00, 327.48, 3.86, 2.48},
	"L125x10": {125, 10, 24.33, 359.82, 3.85, 2.47},
	"L125x12": {125, 12, 28.89, 422.23, 3.82, 2.46},
	"L140x9":  {140, 9, 24.72, 465.72, 4.34, 2.79},
	"L140x10": {140, 10, 27.33, 512.29, 4.33, 2.78},
	"L140x12": {140, 12, 32.49, 602.49, 4.31, 2.76},
	"L160x10": {160, 10, 31.43, 774.24, 4.96, 3.19},
	"L160x12": {160, 12, 37.39, 912.89, 4.94, 3.17},
	"L160x16": {160, 16, 49.07, 1175.19, 4.89, 3.14},
	"L180x11": {180, 11, 38.80, 1216.44, 5.60, 3.59},
	"L180x12": {180, 12, 42.19, 1316.62, 5.59, 3.58},
	"L200x12": {200, 12, 47.10, 1822.78, 6.22, 3.99},
	"L200x14": {200, 14, 54.60, 2097.00, 6.20, 3.97},
	"L200x16": {200, 16, 61.98, 2362.57, 6.17, 3.96},
	"L200x20": {200, 20, 76.54, 2871.47, 6.12, 3.93},
}

// GOST 10704-91 electric-welded pipes, common structural sizes.
// Properties are exact closed forms of d and t, so only the size list is
// tabulated.
var gost10704 = map[string]pipeRow{
	"57x3.5":  {57, 3.5},
	"76x3.5":  {76, 3.5},
	"89x4":    {89, 4},
	"102x4":   {102, 4},
	"108x4":   {108, 4},
	"133x4.5": {133, 4.5},
	"159x5":   {159, 5},
	"219x6":   {219, 6},
	"273x7":   {273, 7},
	"325x8":   {325, 8},
}

// Catalog is an immutable set of standard-profile tables, constructed
// once at process start and passed explicitly into commands. A running
// calculation must never mutate it.
type Catalog struct {
	ibeams   map[string]rolledRow
	channels map[string]rolledRow
	angles   map[string]angleRow
	pipes    map[string]pipeRow
}

var defaultCatalog = &Catalog{
	ibeams:   gost8239,
	channels: gost8240,
	angles:   gost8509,
	pipes:    gost10704,
}

// DefaultCatalog returns the built-in GOST profile tables.
func DefaultCatalog() *Catalog { return defaultCatalog }

// List returns the sorted designations available for a shape.
func (c *Catalog) List(shape Shape) []string {
	var keys []string
	switch shape {
	case IBeam:
		for k := range c.ibeams {
			keys = append(keys, k)
		}
	case Channel:
		for k := range c.channels {
			keys = append(keys, k)
		}
	case Angle:
		for k := range c.angles {
			keys = append(keys, k)
		}
	case CircTube:
		for k := range c.pipes {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Lookup resolves a catalog designation into a Profile with mm-based
// properties. Rectangular tubes have no catalog; use ComputeRectTube.
func (c *Catalog) Lookup(shape Shape, designation string) (*Profile, error) {
	switch shape {
	case IBeam:
		row, ok := c.ibeams[designation]
		if !ok {
			return nil, fmt.Errorf("no I-beam %q in GOST 8239 catalog", designation)
		}
		return rolledProfile(IBeam, designation, row), nil
	case Channel:
		row, ok := c.channels[designation]
		if !ok {
			return nil, fmt.Errorf("no channel %q in GOST 8240 catalog", designation)
		}
		return rolledProfile(Channel, designation, row), nil
	case Angle:
		row, ok := c.angles[designation]
		if !ok {
			return nil, fmt.Errorf("no angle %q in GOST 8509 catalog", designation)
		}
		return angleProfile(designation, row), nil
	case CircTube:
		row, ok := c.pipes[designation]
		if !ok {
			return nil, fmt.Errorf("no pipe %q in GOST 10704 catalog", designation)
		}
		p, err := ComputeCircTube(row.D, row.T)
		if err != nil {
			return nil, err
		}
		p.Designation = designation
		return p, nil
	case RectTube:
		return nil, fmt.Errorf("rectangular tubes have no catalog; compute from dimensions")
	}
	return nil, fmt.Errorf("unknown shape %v", shape)
}

func rolledProfile(shape Shape, designation string, row rolledRow) *Profile {
	a := row.A * 100      // cm² → mm²
	ix := row.Ix * 1e4    // cm⁴ → mm⁴
	iy := row.Iy * 1e4
	hWeb := row.H - 2*row.Tf
	return &Profile{
		Shape:       shape,
		Designation: designation,
		Dims:        Dimensions{H: row.H, B: row.B, Tw: row.Tw, Tf: row.Tf},
		A:           a,
		Ix:          ix,
		Iy:          iy,
		RadX:        row.RadX * 10, // cm → mm
		RadY:        row.RadY * 10,
		Wx:          row.Wx * 1e3, // cm³ → mm³
		Sx:          row.Sx * 1e3,
		Af:          row.B * row.Tf,
		Aw:          hWeb * row.Tw,
		Tw:          row.Tw,
	}
}

func angleProfile(designation string, row angleRow) *Profile {
	a := row.A * 100
	ix := row.Ix * 1e4
	rad := row.RadX * 10
	return &Profile{
		Shape:       Angle,
		Designation: designation,
		Dims:        Dimensions{B: row.B, T: row.T},
		A:           a,
		Ix:          ix,
		Iy:          ix, // equal-leg angle about axes parallel to the legs
		RadX:        rad,
		RadY:        rad,
		IMin:        row.IMin * 10,
	}
}

// FlangeThickness returns the thickness that governs the Ryn lookup for
// the profile: flange thickness for open rolled shapes, wall thickness
// for tubes and angles.
func (p *Profile) FlangeThickness() float64 {
	switch p.Shape {
	case IBeam, Channel:
		return p.Dims.Tf
	case Angle, RectTube, CircTube:
		return p.Dims.T
	}
	return 0
}
