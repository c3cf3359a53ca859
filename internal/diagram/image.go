package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gosteel/firecalc/internal/thermal"
)

// ExportHeatingChart saves the gas/steel heating curves of a simulation
// to an image file. The critical temperature is drawn as a dashed
// horizontal line. Format follows the file extension (.png, .svg, .pdf).
func ExportHeatingChart(sim *thermal.Simulation, filename string) error {
	p := plot.New()
	p.Title.Text = "Unprotected Steel Member Heating"
	p.X.Label.Text = "Time (min)"
	p.Y.Label.Text = "Temperature (°C)"

	gasPts := make(plotter.XYs, len(sim.History))
	steelPts := make(plotter.XYs, len(sim.History))
	for i, s := range sim.History {
		gasPts[i] = plotter.XY{X: s.TimeMin, Y: s.GasC}
		steelPts[i] = plotter.XY{X: s.TimeMin, Y: s.SteelC}
	}

	gasLine, err := plotter.NewLine(gasPts)
	if err != nil {
		return err
	}
	gasLine.LineStyle.Width = vg.Points(1.5)
	gasLine.LineStyle.Color = color.RGBA{R: 220, G: 50, B: 32, A: 255}
	p.Add(gasLine)
	p.Legend.Add("gas", gasLine)

	steelLine, err := plotter.NewLine(steelPts)
	if err != nil {
		return err
	}
	steelLine.LineStyle.Width = vg.Points(2)
	steelLine.LineStyle.Color = color.RGBA{R: 0, G: 90, B: 181, A: 255}
	p.Add(steelLine)
	p.Legend.Add("steel", steelLine)

	critLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: sim.CritTempC},
		{X: sim.MaxTimeMin, Y: sim.CritTempC},
	})
	if err != nil {
		return err
	}
	critLine.LineStyle.Width = vg.Points(1)
	critLine.LineStyle.Color = color.Gray{Y: 80}
	critLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(critLine)
	p.Legend.Add("critical", critLine)

	p.Legend.Top = false
	p.Legend.Left = true

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(width, height, filename)
}
