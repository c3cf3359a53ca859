package strength

import (
	"github.com/gosteel/firecalc/internal/sp16"
)

// LoadKind selects one of the three supported load cases.
type LoadKind int

const (
	Tension LoadKind = iota
	Compression
	Bending
)

func (k LoadKind) String() string {
	switch k {
	case Tension:
		return "tension"
	case Compression:
		return "compression"
	case Bending:
		return "bending"
	}
	return "unknown"
}

// LoadCase is a closed variant over the three load kinds. Forces are in
// N, moments in N·mm, effective lengths in mm; only the fields of the
// selected kind are read.
type LoadCase struct {
	Kind LoadKind

	N          float64 // axial force (N) — Tension, Compression
	LefX, LefY float64 // effective lengths (mm) — Compression

	M float64 // bending moment (N·mm) — Bending
	Q float64 // shear force (N) — Bending
}

// Material bundles the steel properties the engine needs.
type Material struct {
	Grade string
	Ryn   float64 // normative yield strength (MPa)
	E     float64 // elastic modulus (MPa)
}

// Variant carries buckling-curve selection flags that are not derivable
// from the shape alone.
type Variant struct {
	// BoxChannel marks a box section built from two paired channels,
	// which uses curve 'b' instead of the single-channel curve 'c'.
	BoxChannel bool
}

// Fault tags a result whose utilization could not be computed as a
// genuine physical value. Faulted results carry +Inf utilization so that
// sorted batch comparisons stay well-ordered, but the tag — not the
// magnitude — is what identifies them.
type Fault int

const (
	FaultNone Fault = iota
	// FaultDivision marks a zero area, inertia or radius encountered
	// mid-formula.
	FaultDivision
)

func (f Fault) String() string {
	switch f {
	case FaultNone:
		return "none"
	case FaultDivision:
		return "division-guard"
	}
	return "unknown"
}

// Method names the branch of the buckling coefficient formula that
// produced phi.
type Method string

const (
	MethodCap      Method = "cap"      // lambda_bar < 0.6 on curves a, b
	MethodEuler    Method = "euler"    // lambda_bar above the curve threshold
	MethodStandard Method = "standard" // quadratic root extraction
)

// Result is the load-utilization outcome with the full intermediate
// trace, sufficient to reconstruct the calculation in a report.
type Result struct {
	Kind   LoadKind
	GammaT float64 // utilization factor at reference temperature
	Fault  Fault

	// Compression trace
	Phi       float64
	LambdaX   float64
	LambdaY   float64
	LambdaMax float64
	LambdaBar float64
	Delta     float64
	Axis      string // governing axis, "x" or "y"
	Method    Method
	Curve     sp16.BucklingCurve

	// Bending trace
	GammaBending   float64
	GammaShear     float64
	C1             float64
	FlangeWebRatio float64
	GoverningMode  string // "bending" or "shear"
}
