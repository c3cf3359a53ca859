package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/gosteel/firecalc/internal/thermal"
)

// HeatingChartASCII renders the gas and steel heating curves of a
// simulation as a terminal plot. The history is downsampled to the
// requested width so hour-long 1-second runs stay readable.
func HeatingChartASCII(sim *thermal.Simulation, width, height int) string {
	if len(sim.History) == 0 {
		return ""
	}
	// sampleSeries needs at least two columns to keep both endpoints.
	if width < 2 {
		width = 70
	}
	if height <= 0 {
		height = 15
	}

	gas := sampleSeries(sim.History, width, func(s thermal.Step) float64 { return s.GasC })
	steel := sampleSeries(sim.History, width, func(s thermal.Step) float64 { return s.SteelC })

	graph := asciigraph.PlotMany(
		[][]float64{gas, steel},
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("Heating curves, 0–%.0f min (critical %.0f °C)", sim.MaxTimeMin, sim.CritTempC)),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.SeriesLegends("gas °C", "steel °C"),
	)
	return graph
}

func sampleSeries(history []thermal.Step, n int, pick func(thermal.Step) float64) []float64 {
	if len(history) <= n {
		out := make([]float64, len(history))
		for i, s := range history {
			out[i] = pick(s)
		}
		return out
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		idx := i * (len(history) - 1) / (n - 1)
		out[i] = pick(history[idx])
	}
	return out
}

// DrawSummaryBox frames a titled result block in box-drawing characters.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
