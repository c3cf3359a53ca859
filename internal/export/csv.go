package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gosteel/firecalc/internal/thermal"
)

// WriteHistoryCSV streams the heating history of a simulation as CSV.
func WriteHistoryCSV(w io.Writer, sim *thermal.Simulation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time_min", "time_sec", "gas_c", "steel_c", "alpha"}); err != nil {
		return err
	}
	for _, s := range sim.History {
		rec := []string{
			fmt.Sprintf("%.4f", s.TimeMin),
			fmt.Sprintf("%.1f", s.TimeMin*60),
			fmt.Sprintf("%.2f", s.GasC),
			fmt.Sprintf("%.2f", s.SteelC),
			fmt.Sprintf("%.3f", s.Alpha),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the heating history to a file.
func ExportCSV(path string, sim *thermal.Simulation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteHistoryCSV(f, sim); err != nil {
		return err
	}
	return f.Sync()
}
