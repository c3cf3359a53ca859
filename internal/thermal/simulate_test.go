package thermal

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateMassiveMemberCrosses(t *testing.T) {
	// Am/V = 150 1/m with a 500 °C critical temperature crosses well
	// inside a 60 minute horizon.
	sim, err := Simulate(150, 500, 60, 1)
	require.NoError(t, err)

	assert.Equal(t, Crossed, sim.State)
	assert.Greater(t, sim.RatingMin, 0.0)
	assert.Less(t, sim.RatingMin, 60.0)
	assert.NotContains(t, sim.Rating(), ">")
}

func TestSimulateOpenEndedRating(t *testing.T) {
	// The gas curve reaches only ~678 °C after 10 minutes, so a 900 °C
	// critical temperature is unreachable within the horizon.
	sim, err := Simulate(50, 900, 10, 1)
	require.NoError(t, err)

	assert.Equal(t, Completed, sim.State)
	assert.True(t, strings.HasPrefix(sim.Rating(), "> "), "rating %q should be open-ended", sim.Rating())
}

func TestSimulateHistoryShape(t *testing.T) {
	sim, err := Simulate(100, 500, 2, 1)
	require.NoError(t, err)

	// One initial record plus one per step.
	assert.Len(t, sim.History, 121)
	first := sim.History[0]
	assert.Equal(t, 0.0, first.TimeMin)
	assert.InDelta(t, 19.85, first.GasC, 0.01)
	assert.InDelta(t, 19.85, first.SteelC, 0.01)
	assert.Equal(t, 0.0, first.Alpha)

	// Steel lags the gas but heats monotonically under the standard curve.
	for i := 1; i < len(sim.History); i++ {
		if sim.History[i].SteelC < sim.History[i-1].SteelC {
			t.Fatalf("steel temperature fell at step %d", i)
		}
		if sim.History[i].SteelC > sim.History[i].GasC {
			t.Fatalf("steel overtook the gas at step %d", i)
		}
	}
}

func TestSimulateFasterHeatingForLargerSectionFactor(t *testing.T) {
	thin, err := Simulate(200, 500, 60, 1)
	require.NoError(t, err)
	thick, err := Simulate(100, 500, 60, 1)
	require.NoError(t, err)

	require.Equal(t, Crossed, thin.State)
	require.Equal(t, Crossed, thick.State)
	assert.Less(t, thin.RatingMin, thick.RatingMin,
		"a thinner member (larger Am/V) must cross earlier")
}

func TestSimulateDeterministic(t *testing.T) {
	a, err := Simulate(120, 550, 30, 2)
	require.NoError(t, err)
	b, err := Simulate(120, 550, 30, 2)
	require.NoError(t, err)

	if !reflect.DeepEqual(a.History, b.History) {
		t.Error("identical inputs must produce identical histories")
	}
	assert.Equal(t, a.RatingMin, b.RatingMin)
}

func TestSimulateContinuesAfterCrossing(t *testing.T) {
	sim, err := Simulate(150, 500, 60, 1)
	require.NoError(t, err)
	require.Equal(t, Crossed, sim.State)

	// The history runs to the horizon even though the rating latched
	// earlier.
	last := sim.History[len(sim.History)-1]
	assert.InDelta(t, 60.0, last.TimeMin, 1e-9)
	assert.Greater(t, last.SteelC, sim.CritTempC)
}

func TestSimulateDefaultsAndValidation(t *testing.T) {
	sim, err := Simulate(100, 500, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sim.DtSec, "non-positive dt falls back to 1 s")

	_, err = Simulate(0, 500, 60, 1)
	assert.Error(t, err)
	_, err = Simulate(-10, 500, 60, 1)
	assert.Error(t, err)
	_, err = Simulate(100, 500, 0, 1)
	assert.Error(t, err)
}
