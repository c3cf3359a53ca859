package thermal

import (
	"fmt"
	"math"
)

// Heat-balance constants, fixed to reproduce the validated reference
// heating curves.
const (
	SteelDensity      = 7800.0 // kg/m³
	ReducedEmissivity = 0.563
	SpecificHeatBase  = 310.0 // J/(kg·K)
	SpecificHeatSlope = 0.48  // J/(kg·K²)
	convectiveBase    = 29.0  // W/(m²·K)
)

// State is the simulator's phase. The loop stays Running until the steel
// crosses the critical temperature (Crossed — the rating is latched but
// the loop continues to the horizon to finish the history) or the step
// budget is exhausted (Completed).
type State int

const (
	Running State = iota
	Crossed
	Completed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Crossed:
		return "crossed"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Step is one record of the heating history.
type Step struct {
	TimeMin float64 // elapsed time (min)
	GasC    float64 // furnace gas temperature (°C)
	SteelC  float64 // steel temperature (°C)
	Alpha   float64 // combined convective-radiative coefficient (W/m²K)
}

// Simulation is the result of one heating run. History is append-only
// during the run and never mutated afterwards.
type Simulation struct {
	AmV        float64 // section factor (1/m)
	CritTempC  float64
	MaxTimeMin float64
	DtSec      float64

	State     State
	RatingMin float64 // meaningful only when State == Crossed
	History   []Step
}

// Rating formats the fire-resistance time: the crossing minute, or an
// open-ended "> max" when the critical temperature was never reached
// within the horizon.
func (s *Simulation) Rating() string {
	if s.State == Crossed {
		return fmt.Sprintf("%.1f min", s.RatingMin)
	}
	return fmt.Sprintf("> %.0f min", s.MaxTimeMin)
}

// heatTransferCoefficient evaluates the combined convective-radiative
// coefficient at one step. The removable singularity at Tg == Ts takes
// the convective limit.
func heatTransferCoefficient(gasK, steelK float64) float64 {
	diff := gasK - steelK
	if math.Abs(diff) < 0.1 {
		return convectiveBase
	}
	rad := (math.Pow(gasK/100, 4) - math.Pow(steelK/100, 4)) / diff
	return convectiveBase + 5.67*ReducedEmissivity*rad
}

// specificHeat is the temperature-dependent specific heat of steel,
// c(Ts) = 310 + 0.48·Ts with Ts in kelvin.
func specificHeat(steelK float64) float64 {
	return SpecificHeatBase + SpecificHeatSlope*steelK
}

// Simulate time-steps the lumped-mass heat balance of an unprotected
// member with section factor amV (1/m) until maxTimeMin minutes have
// elapsed, recording every step. A pure function of its arguments: two
// identical calls produce identical histories.
func Simulate(amV, critTempC, maxTimeMin, dtSec float64) (*Simulation, error) {
	if amV <= 0 {
		return nil, fmt.Errorf("section factor Am/V must be positive, got %.2f", amV)
	}
	if maxTimeMin <= 0 {
		return nil, fmt.Errorf("max time must be positive, got %.2f min", maxTimeMin)
	}
	if dtSec <= 0 {
		dtSec = 1.0
	}

	sim := &Simulation{
		AmV:        amV,
		CritTempC:  critTempC,
		MaxTimeMin: maxTimeMin,
		DtSec:      dtSec,
		State:      Running,
	}

	deltaM := 1.0 / amV // reduced thickness in m
	critK := CelsiusToKelvin(critTempC)
	steelK := baseTempK

	steps := int(maxTimeMin * 60.0 / dtSec)
	sim.History = make([]Step, 0, steps+1)
	sim.History = append(sim.History, Step{
		TimeMin: 0,
		GasC:    KelvinToCelsius(baseTempK),
		SteelC:  KelvinToCelsius(steelK),
		Alpha:   0,
	})

	tSec := 0.0
	for i := 0; i < steps; i++ {
		tSec += dtSec
		gasK := StandardFireCurve(tSec)
		alpha := heatTransferCoefficient(gasK, steelK)

		dT := dtSec * alpha * (gasK - steelK) / (SteelDensity * deltaM * specificHeat(steelK))
		steelK += dT

		sim.History = append(sim.History, Step{
			TimeMin: tSec / 60.0,
			GasC:    KelvinToCelsius(gasK),
			SteelC:  KelvinToCelsius(steelK),
			Alpha:   alpha,
		})

		if sim.State == Running && steelK >= critK {
			sim.RatingMin = tSec / 60.0
			sim.State = Crossed
		}
	}

	if sim.State == Running {
		sim.State = Completed
	}
	return sim, nil
}
