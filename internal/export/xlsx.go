package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gosteel/firecalc/internal/thermal"
)

const heatingSheet = "Heating"

// ExportXLSX writes the heating history to an Excel workbook with one
// row per simulation step.
func ExportXLSX(path string, sim *thermal.Simulation) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", heatingSheet); err != nil {
		return err
	}

	header := []interface{}{"Time (min)", "Time (s)", "Gas (°C)", "Steel (°C)", "Alpha (W/m²K)"}
	if err := f.SetSheetRow(heatingSheet, "A1", &header); err != nil {
		return err
	}

	for i, s := range sim.History {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.TimeMin, s.TimeMin * 60, s.GasC, s.SteelC, s.Alpha}
		if err := f.SetSheetRow(heatingSheet, cell, &row); err != nil {
			return err
		}
	}

	// Summary block to the right of the data.
	summary := [][]interface{}{
		{"Am/V (1/m)", sim.AmV},
		{"Critical temp (°C)", sim.CritTempC},
		{"Rating", sim.Rating()},
		{"State", sim.State.String()},
	}
	for i, row := range summary {
		cell := fmt.Sprintf("G%d", i+1)
		r := row
		if err := f.SetSheetRow(heatingSheet, cell, &r); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(heatingSheet, "A", "E", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(heatingSheet, "G", "H", 20); err != nil {
		return err
	}

	return f.SaveAs(path)
}
