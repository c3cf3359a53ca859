package section

import "fmt"

// Shape identifies one of the supported cross-section families.
type Shape int

const (
	IBeam Shape = iota
	Channel
	Angle
	RectTube
	CircTube
)

func (s Shape) String() string {
	switch s {
	case IBeam:
		return "ibeam"
	case Channel:
		return "channel"
	case Angle:
		return "angle"
	case RectTube:
		return "recttube"
	case CircTube:
		return "circtube"
	}
	return "unknown"
}

// ParseShape converts a CLI shape name into a Shape.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "ibeam", "i-beam", "i":
		return IBeam, nil
	case "channel", "c":
		return Channel, nil
	case "angle", "l":
		return Angle, nil
	case "recttube", "rect-tube", "box":
		return RectTube, nil
	case "circtube", "circ-tube", "pipe":
		return CircTube, nil
	}
	return 0, fmt.Errorf("unknown shape %q (expected ibeam, channel, angle, recttube or circtube)", name)
}

// Dimensions carries the parametric dimensions of a section in mm.
// Which fields are meaningful depends on the shape:
//   - IBeam, Channel: H, B, Tw, Tf
//   - RectTube:       H, B, T
//   - CircTube:       D, T
//   - Angle:          B, T (catalog profiles only)
type Dimensions struct {
	H  float64 `json:"h,omitempty"`  // overall height (mm)
	B  float64 `json:"b,omitempty"`  // flange width / leg width (mm)
	Tw float64 `json:"tw,omitempty"` // web thickness (mm)
	Tf float64 `json:"tf,omitempty"` // flange thickness (mm)
	T  float64 `json:"t,omitempty"`  // wall/leg thickness (mm)
	D  float64 `json:"d,omitempty"`  // outer diameter (mm)
}

// Profile is the derived property set of a cross-section. All values are
// in mm-based units (mm², mm³, mm⁴). A Profile is immutable once produced.
type Profile struct {
	Shape       Shape      `json:"shape"`
	Designation string     `json:"designation,omitempty"` // catalog key, empty for parametric sections
	Dims        Dimensions `json:"dims"`

	A  float64 `json:"a"`  // cross-section area (mm²)
	Ix float64 `json:"ix"` // moment of inertia, strong axis (mm⁴)
	Iy float64 `json:"iy"` // moment of inertia, weak axis (mm⁴)

	RadX float64 `json:"rad_x"` // radius of gyration, strong axis (mm)
	RadY float64 `json:"rad_y"` // radius of gyration, weak axis (mm)

	// IMin is the minor principal radius of gyration. Set for angle
	// profiles only; stability checks on angles must use it in place of
	// RadY, since the weak-axis check is governed by the minimum radius
	// rather than the geometric-axis value.
	IMin float64 `json:"i_min,omitempty"`

	Wx float64 `json:"wx"` // elastic section modulus, strong axis (mm³)
	Sx float64 `json:"sx"` // first moment of the half-section (mm³)

	Af float64 `json:"af"` // area of one flange (mm²), open shapes only
	Aw float64 `json:"aw"` // web area (mm²), open shapes only
	Tw float64 `json:"tw"` // effective web thickness for shear (mm)
}

// GeometryError reports a physically invalid set of dimensions: a
// non-positive dimension, or a wall/flange thickness that leaves a
// non-positive net hollow dimension.
type GeometryError struct {
	Msg string
}

func (e *GeometryError) Error() string { return e.Msg }

func geomErrf(format string, args ...any) *GeometryError {
	return &GeometryError{Msg: fmt.Sprintf(format, args...)}
}
