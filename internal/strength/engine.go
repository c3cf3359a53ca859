package strength

import (
	"errors"
	"fmt"
	"math"

	"github.com/gosteel/firecalc/internal/section"
	"github.com/gosteel/firecalc/internal/sp16"
)

// slendernessSentinel stands in for lambda when a radius of gyration is
// zero. The result is additionally tagged with FaultDivision.
const slendernessSentinel = 999.0

// ErrNegativeDiscriminant is returned when the standard buckling branch
// produces a negative discriminant. This cannot happen for lambda_bar
// inside the curve's intended range, so it signals a numeric or domain
// fault that must be reported rather than clamped to a wrong root.
var ErrNegativeDiscriminant = errors.New("negative discriminant in buckling coefficient formula")

// Compute evaluates the utilization factor gamma_T for a load case
// against a section and material, dispatching on the case kind.
func Compute(lc LoadCase, p *section.Profile, mat Material, v Variant) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("nil section profile")
	}
	switch lc.Kind {
	case Tension:
		r := ComputeTension(lc.N, p, mat)
		return &r, nil
	case Compression:
		return ComputeCompression(lc.N, lc.LefX, lc.LefY, p, mat, v)
	case Bending:
		r := ComputeBending(lc.M, lc.Q, p, mat)
		return &r, nil
	}
	return nil, fmt.Errorf("unknown load kind %v", lc.Kind)
}

// ComputeTension evaluates gamma_T = N / (A·Ry·gamma_c) for central
// tension.
func ComputeTension(n float64, p *section.Profile, mat Material) Result {
	if p.A <= 0 || mat.Ryn <= 0 {
		return Result{Kind: Tension, GammaT: math.Inf(1), Fault: FaultDivision}
	}
	return Result{
		Kind:   Tension,
		GammaT: n / (p.A * mat.Ryn * sp16.GammaC),
	}
}

// CurveFor selects the stability curve for a shape, honoring the
// paired-channel box variant.
func CurveFor(shape section.Shape, v Variant) sp16.BucklingCurve {
	switch shape {
	case section.CircTube, section.RectTube:
		return sp16.CurveA
	case section.Channel:
		if v.BoxChannel {
			return sp16.CurveB
		}
		return sp16.CurveC
	default: // rolled I-beams and angles
		return sp16.CurveB
	}
}

// ComputeCompression evaluates central compression with buckling.
// The governing slenderness is the larger of the two axis values (ties
// break toward x); angles substitute their minor principal radius for
// the weak-axis radius.
func ComputeCompression(n, lefX, lefY float64, p *section.Profile, mat Material, v Variant) (*Result, error) {
	res := &Result{Kind: Compression, Curve: CurveFor(p.Shape, v)}

	if p.A <= 0 || mat.Ryn <= 0 || mat.E <= 0 {
		res.GammaT = math.Inf(1)
		res.Fault = FaultDivision
		return res, nil
	}

	radX := p.RadX
	radY := p.RadY
	if p.IMin > 0 {
		radY = p.IMin
	}

	res.LambdaX = slenderness(lefX, radX, res)
	res.LambdaY = slenderness(lefY, radY, res)
	res.LambdaMax = math.Max(res.LambdaX, res.LambdaY)
	if res.LambdaX >= res.LambdaY {
		res.Axis = "x"
	} else {
		res.Axis = "y"
	}

	phi, delta, lambdaBar, method, err := phiCoefficient(res.LambdaMax, mat.Ryn, mat.E, res.Curve)
	if err != nil {
		return nil, err
	}
	res.Phi = phi
	res.Delta = delta
	res.LambdaBar = lambdaBar
	res.Method = method

	if phi <= 0 {
		res.GammaT = math.Inf(1)
		res.Fault = FaultDivision
		return res, nil
	}
	res.GammaT = n / (phi * p.A * mat.Ryn * sp16.GammaC)
	return res, nil
}

func slenderness(lef, rad float64, res *Result) float64 {
	if rad <= 0 {
		res.Fault = FaultDivision
		return slendernessSentinel
	}
	return lef / rad
}

// phiCoefficient computes the buckling reduction coefficient using the
// three-branch piecewise formula: a unity cap for stocky members on
// curves a and b, an Euler-like branch above the curve threshold, and the
// standard quadratic root extraction in between.
func phiCoefficient(lambdaMax, ry, e float64, curve sp16.BucklingCurve) (float64, float64, float64, Method, error) {
	lambdaBar := lambdaMax * math.Sqrt(ry/e)

	if lambdaBar < 0.6 && (curve.Code == "a" || curve.Code == "b") {
		return 1.0, 0, lambdaBar, MethodCap, nil
	}

	if lambdaBar > curve.Threshold {
		return 7.6 / (lambdaBar * lambdaBar), 0, lambdaBar, MethodEuler, nil
	}

	if lambdaBar <= 0 {
		return 1.0, 0, lambdaBar, MethodCap, nil
	}

	delta := 9.87*(1-curve.Alpha+curve.Beta*lambdaBar) + lambdaBar*lambdaBar
	disc := delta*delta - 39.48*lambdaBar*lambdaBar
	if disc < 0 {
		return 0, delta, lambdaBar, "", fmt.Errorf("%w: delta=%.4f lambda_bar=%.4f curve=%s",
			ErrNegativeDiscriminant, delta, lambdaBar, curve.Code)
	}

	val := 0.5 * (delta - math.Sqrt(disc)) / (lambdaBar * lambdaBar)
	return val, delta, lambdaBar, MethodStandard, nil
}

// ComputeBending evaluates bending with shear. The governing utilization
// is the worst case across the two independent failure modes.
func ComputeBending(m, q float64, p *section.Profile, mat Material) Result {
	res := Result{Kind: Bending, C1: 1.0}

	// Plastic-section factor applies to open rolled shapes with a
	// defined flange/web split.
	if (p.Shape == section.IBeam || p.Shape == section.Channel) && p.Aw > 0 {
		res.FlangeWebRatio = p.Af / p.Aw
		res.C1 = sp16.C1(res.FlangeWebRatio)
	}

	if p.Wx <= 0 || mat.Ryn <= 0 {
		res.GammaBending = math.Inf(1)
		res.Fault = FaultDivision
	} else {
		res.GammaBending = m / (res.C1 * p.Wx * mat.Ryn * sp16.GammaC)
	}

	// A zero shear demand needs no web check; otherwise a missing web
	// thickness (circular tubes) is a division fault, not a zero
	// utilization.
	switch {
	case q == 0:
		res.GammaShear = 0
	case p.Ix <= 0 || p.Tw <= 0 || mat.Ryn <= 0:
		res.GammaShear = math.Inf(1)
		res.Fault = FaultDivision
	default:
		rs := sp16.ShearRatio * mat.Ryn
		res.GammaShear = q * p.Sx / (p.Ix * p.Tw * rs * sp16.GammaC)
	}

	if res.GammaBending >= res.GammaShear {
		res.GammaT = res.GammaBending
		res.GoverningMode = "bending"
	} else {
		res.GammaT = res.GammaShear
		res.GoverningMode = "shear"
	}
	return res
}
