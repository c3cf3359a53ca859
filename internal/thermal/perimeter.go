package thermal

import (
	"fmt"
	"math"

	"github.com/gosteel/firecalc/internal/section"
)

// Exposure selects how many faces of the member the fire heats.
type Exposure int

const (
	FourSided Exposure = iota
	ThreeSided
)

func (e Exposure) String() string {
	if e == ThreeSided {
		return "3-sided"
	}
	return "4-sided"
}

// ParseExposure converts a CLI exposure value into an Exposure.
func ParseExposure(s string) (Exposure, error) {
	switch s {
	case "4", "4-sided", "four":
		return FourSided, nil
	case "3", "3-sided", "three":
		return ThreeSided, nil
	}
	return 0, fmt.Errorf("unknown exposure %q (expected 3 or 4)", s)
}

// PerimeterResult is the heated perimeter of a section together with a
// degradation marker for shapes where the requested exposure cannot
// apply.
type PerimeterResult struct {
	PerimeterMM float64
	// Degraded is set when a three-sided request on a circular tube was
	// computed with the four-sided formula: the shape has no flat face
	// to shield.
	Degraded bool
}

// HeatedPerimeter computes the fire-exposed perimeter for a shape from
// its raw dimensions.
func HeatedPerimeter(shape section.Shape, dims section.Dimensions, exp Exposure) (PerimeterResult, error) {
	switch shape {
	case section.IBeam, section.Channel:
		// The channel reuses the I-beam contour formula.
		if exp == ThreeSided {
			return PerimeterResult{PerimeterMM: 2*dims.H + 3*dims.B - 2*dims.Tw}, nil
		}
		return PerimeterResult{PerimeterMM: 2*dims.H + 4*dims.B - 2*dims.Tw}, nil
	case section.RectTube:
		if exp == ThreeSided {
			return PerimeterResult{PerimeterMM: 2*dims.H + dims.B}, nil
		}
		return PerimeterResult{PerimeterMM: 2 * (dims.H + dims.B)}, nil
	case section.Angle:
		return PerimeterResult{PerimeterMM: 4 * dims.B}, nil
	case section.CircTube:
		return PerimeterResult{
			PerimeterMM: math.Pi * dims.D,
			Degraded:    exp == ThreeSided,
		}, nil
	}
	return PerimeterResult{}, fmt.Errorf("unknown shape %v", shape)
}

// ReducedThickness returns delta_np = A/P in mm, the equivalent metal
// thickness governing the heating rate.
func ReducedThickness(areaMM2, perimeterMM float64) (float64, error) {
	if perimeterMM <= 0 {
		return 0, fmt.Errorf("heated perimeter must be positive, got %.2f mm", perimeterMM)
	}
	if areaMM2 <= 0 {
		return 0, fmt.Errorf("section area must be positive, got %.2f mm²", areaMM2)
	}
	return areaMM2 / perimeterMM, nil
}

// SectionFactor converts a reduced thickness in mm into the section
// factor Am/V in 1/m.
func SectionFactor(reducedThicknessMM float64) float64 {
	return 1000.0 / reducedThicknessMM
}
