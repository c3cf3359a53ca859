package sp16

import "fmt"

// SP 16.13330 Material Constants

const (
	// Modulus of elasticity for structural steel (MPa)
	E = 206000.0

	// Shear strength ratio: Rs = 0.58 Ry
	ShearRatio = 0.58

	// Service factor (taken as 1.0 for fire design checks)
	GammaC = 1.0
)

// StrengthGroup buckets steel grades into the three strength classes of
// Table B.1, each with its own temperature reduction table.
type StrengthGroup int

const (
	// NormalStrength covers C235, C245, C255
	NormalStrength StrengthGroup = iota
	// IncreasedStrength covers C345, C345K, C355, C375
	IncreasedStrength
	// HighStrength covers C390, C440, C550, C590
	HighStrength
)

func (g StrengthGroup) String() string {
	switch g {
	case NormalStrength:
		return "normal"
	case IncreasedStrength:
		return "increased"
	case HighStrength:
		return "high"
	}
	return "unknown"
}

// Grades lists the steel grades with normative resistance data (Table B.7).
var Grades = []string{"C235", "C245", "C255", "C345", "C345K", "C355", "C355-1", "C390"}

// IsKnownGrade reports whether the grade has entries in the Ryn table.
func IsKnownGrade(grade string) bool {
	_, ok := rynTable[grade]
	return ok
}

// GroupForGrade maps a steel grade to its strength group.
// Unlisted grades fall back to the normal-strength group.
func GroupForGrade(grade string) StrengthGroup {
	switch grade {
	case "C390", "C440", "C550", "C590":
		return HighStrength
	case "C345", "C345K", "C355", "C355-1", "C375":
		return IncreasedStrength
	default:
		return NormalStrength
	}
}

// rynRange is one thickness bucket of Table B.7: the value applies to
// element thicknesses up to and including MaxThickness.
type rynRange struct {
	MaxThickness float64 // mm
	Ryn          float64 // MPa
}

// Table B.7 — normative yield strength Ryn by grade and rolled thickness.
// For shaped sections the flange thickness governs.
var rynTable = map[string][]rynRange{
	"C235":   {{20, 235}, {40, 225}},
	"C245":   {{20, 245}, {40, 235}},
	"C255":   {{10, 255}, {20, 245}, {40, 235}},
	"C345":   {{10, 345}, {20, 325}, {40, 305}},
	"C345K":  {{10, 345}},
	"C355":   {{16, 355}, {40, 345}},
	"C355-1": {{16, 355}, {40, 345}},
	"C390":   {{10, 390}, {20, 380}, {40, 370}},
}

// Ryn returns the normative yield strength (MPa) for a grade and element
// thickness. Thicknesses beyond the last tabulated bucket are rejected:
// the source table defines no values there (C345K in particular stops at
// 10 mm) and silently reusing the last row would overstate capacity.
func Ryn(grade string, thicknessMM float64) (float64, error) {
	ranges, ok := rynTable[grade]
	if !ok {
		return 0, fmt.Errorf("unknown steel grade %q", grade)
	}
	if thicknessMM <= 0 {
		return 0, fmt.Errorf("thickness must be positive, got %.2f mm", thicknessMM)
	}
	for _, r := range ranges {
		if thicknessMM <= r.MaxThickness {
			return r.Ryn, nil
		}
	}
	return 0, fmt.Errorf("grade %s: no Ryn tabulated for thickness %.1f mm (max %.0f mm)",
		grade, thicknessMM, ranges[len(ranges)-1].MaxThickness)
}
