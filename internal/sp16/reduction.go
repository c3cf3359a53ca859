package sp16

import "fmt"

// TableNode is one (temperature, factor) pair of a reduction table.
type TableNode struct {
	TempC  float64 // steel temperature (°C)
	Factor float64 // strength reduction factor gamma_T at that temperature
}

// ReductionTable holds the temperature reduction factors of Table B.1 for
// one strength group. Nodes are ordered by ascending temperature with a
// non-increasing factor; Factor(20°C) = 1.0 and the table saturates at the
// 800 °C node. Tables are package-level reference data and must never be
// mutated.
type ReductionTable struct {
	Group StrengthGroup
	Nodes []TableNode
}

var (
	reductionNormal = &ReductionTable{
		Group: NormalStrength,
		Nodes: []TableNode{
			{20, 1.00}, {100, 1.00}, {250, 1.00},
			{300, 0.84}, {350, 0.78}, {400, 0.72}, {450, 0.67},
			{500, 0.61}, {550, 0.54}, {600, 0.45}, {650, 0.34},
			{700, 0.20}, {800, 0.00},
		},
	}

	reductionIncreased = &ReductionTable{
		Group: IncreasedStrength,
		Nodes: []TableNode{
			{20, 1.00}, {100, 1.00}, {250, 1.00},
			{300, 0.84}, {350, 0.75}, {400, 0.70}, {450, 0.65},
			{500, 0.60}, {550, 0.55}, {600, 0.46}, {650, 0.34},
			{700, 0.18}, {800, 0.00},
		},
	}

	reductionHigh = &ReductionTable{
		Group: HighStrength,
		Nodes: []TableNode{
			{20, 1.00}, {100, 1.00}, {250, 1.00},
			{300, 0.89}, {350, 0.83}, {400, 0.79}, {450, 0.75},
			{500, 0.71}, {550, 0.66}, {600, 0.58}, {650, 0.47},
			{700, 0.32}, {800, 0.00},
		},
	}
)

// ReductionTableFor returns the reduction table of a strength group.
func ReductionTableFor(group StrengthGroup) *ReductionTable {
	switch group {
	case IncreasedStrength:
		return reductionIncreased
	case HighStrength:
		return reductionHigh
	default:
		return reductionNormal
	}
}

// InterpolationTrace records the bracketing nodes used for an inverse
// interpolation, so a report can reproduce the calculation.
type InterpolationTrace struct {
	T1, F1 float64 // lower-temperature node
	T2, F2 float64 // higher-temperature node
}

// CriticalTempResult is the outcome of inverting a reduction table.
type CriticalTempResult struct {
	TempC     float64
	Trace     *InterpolationTrace // nil at the table boundaries
	Saturated bool                // gammaT at or below the top-node factor
}

// CriticalTemperature finds the steel temperature at which the reduction
// factor equals gammaT. gammaT >= 1 means the member has no
// elevated-temperature vulnerability and 20 °C is returned; gammaT at or
// below the top-node factor saturates to the top-node temperature.
func (t *ReductionTable) CriticalTemperature(gammaT float64) CriticalTempResult {
	last := t.Nodes[len(t.Nodes)-1]
	if gammaT >= 1.0 {
		return CriticalTempResult{TempC: t.Nodes[0].TempC}
	}
	if gammaT <= last.Factor {
		return CriticalTempResult{TempC: last.TempC, Saturated: true}
	}

	for i := 0; i < len(t.Nodes)-1; i++ {
		n1, n2 := t.Nodes[i], t.Nodes[i+1]
		if n1.Factor >= gammaT && gammaT >= n2.Factor {
			tc := n1.TempC
			if n1.Factor != n2.Factor {
				tc = n1.TempC + (gammaT-n1.Factor)*(n2.TempC-n1.TempC)/(n2.Factor-n1.Factor)
			}
			return CriticalTempResult{
				TempC: tc,
				Trace: &InterpolationTrace{T1: n1.TempC, F1: n1.Factor, T2: n2.TempC, F2: n2.Factor},
			}
		}
	}
	// Unreachable for a monotone table; keep the saturating fallback.
	return CriticalTempResult{TempC: last.TempC, Saturated: true}
}

// Validate checks the structural invariants the inverse interpolation
// relies on: ascending temperatures and a non-increasing factor starting
// at 1.0.
func (t *ReductionTable) Validate() error {
	if len(t.Nodes) < 2 {
		return fmt.Errorf("reduction table %s: needs at least 2 nodes", t.Group)
	}
	if t.Nodes[0].Factor != 1.0 {
		return fmt.Errorf("reduction table %s: first factor must be 1.0, got %.2f", t.Group, t.Nodes[0].Factor)
	}
	for i := 1; i < len(t.Nodes); i++ {
		if t.Nodes[i].TempC <= t.Nodes[i-1].TempC {
			return fmt.Errorf("reduction table %s: temperatures not ascending at node %d", t.Group, i)
		}
		if t.Nodes[i].Factor > t.Nodes[i-1].Factor {
			return fmt.Errorf("reduction table %s: factor increases at node %d", t.Group, i)
		}
	}
	return nil
}
