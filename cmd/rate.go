package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/gosteel/firecalc/internal/diagram"
	"github.com/gosteel/firecalc/internal/export"
	"github.com/gosteel/firecalc/internal/sp16"
	"github.com/gosteel/firecalc/internal/strength"
	"github.com/gosteel/firecalc/internal/thermal"
	"github.com/spf13/cobra"
)

var (
	rateSection  sectionFlags
	rateMaterial materialFlags

	rateLoad   string
	rateForce  float64 // kN
	rateMoment float64 // kN·m
	rateShear  float64 // kN
	rateLength float64 // m
	rateMuX    float64
	rateMuY    float64
	rateBox    bool

	rateExposure string
	rateMax      float64
	rateDt       float64
	rateRequired float64

	rateObject  string
	rateAddress string
	rateAscii   bool
	rateChart   string
	rateCSV     string
	rateXLSX    string
	rateReport  string
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Full fire-resistance rating of a loaded member",
	Long: `Run the complete rating chain: section properties, utilization
factor, critical temperature, heated perimeter and the heating
simulation, ending in the actual fire-resistance rating.

The chain is:
  geometry → gamma_T → t_cr → Am/V → heating simulation → rating

Examples:
  # Compressed I-beam column, 4-sided fire exposure
  firecalc rate --shape ibeam --designation I20 --grade C245 \
      --load compression --force 400 --length 4

  # Bent beam under a slab (3-sided), with a PDF report
  firecalc rate --shape ibeam --designation I30 --grade C255 \
      --load bending --moment 120 --shear 80 --exposure 3 \
      --required 90 --report beam.pdf --chart beam.png`,
	Run: runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)

	rateSection.register(rateCmd)
	rateMaterial.register(rateCmd)

	rateCmd.Flags().StringVar(&rateLoad, "load", "", "Load case: tension, compression or bending [required]")
	rateCmd.Flags().Float64VarP(&rateForce, "force", "N", 0, "Axial force N (kN), tension/compression")
	rateCmd.Flags().Float64VarP(&rateMoment, "moment", "M", 0, "Bending moment M (kN·m)")
	rateCmd.Flags().Float64VarP(&rateShear, "shear", "Q", 0, "Shear force Q (kN)")
	rateCmd.Flags().Float64VarP(&rateLength, "length", "L", 0, "Geometric member length (m), compression")
	rateCmd.Flags().Float64Var(&rateMuX, "mu-x", 1.0, "Effective length factor about x")
	rateCmd.Flags().Float64Var(&rateMuY, "mu-y", 1.0, "Effective length factor about y")
	rateCmd.Flags().BoolVar(&rateBox, "box-channel", false, "Box section of two paired channels (curve b)")

	rateCmd.Flags().StringVarP(&rateExposure, "exposure", "e", "4", "Fire exposure: 4 or 3 sided")
	rateCmd.Flags().Float64Var(&rateMax, "max", 180, "Simulation time horizon (min)")
	rateCmd.Flags().Float64Var(&rateDt, "dt", 1, "Simulation time step (s)")
	rateCmd.Flags().Float64VarP(&rateRequired, "required", "r", 0, "Required rating (min), for the conclusion")

	rateCmd.Flags().StringVar(&rateObject, "object", "", "Protected object name, for the report")
	rateCmd.Flags().StringVar(&rateAddress, "address", "", "Protected object address, for the report")
	rateCmd.Flags().BoolVar(&rateAscii, "ascii", false, "Plot the heating curves in the terminal")
	rateCmd.Flags().StringVar(&rateChart, "chart", "", "Save a heating chart image (.png/.svg/.pdf)")
	rateCmd.Flags().StringVar(&rateCSV, "csv", "", "Save the heating history as CSV")
	rateCmd.Flags().StringVar(&rateXLSX, "xlsx", "", "Save the heating history as an Excel workbook")
	rateCmd.Flags().StringVar(&rateReport, "report", "", "Save a PDF calculation report")

	rateCmd.MarkFlagRequired("load")
}

func buildRateLoadCase() (strength.LoadCase, string, error) {
	switch rateLoad {
	case "tension":
		if rateForce <= 0 {
			return strength.LoadCase{}, "", fmt.Errorf("tension needs a positive --force")
		}
		return strength.LoadCase{Kind: strength.Tension, N: rateForce * 1e3},
			fmt.Sprintf("central tension, N = %.1f kN", rateForce), nil
	case "compression":
		if rateForce <= 0 {
			return strength.LoadCase{}, "", fmt.Errorf("compression needs a positive --force")
		}
		if rateLength <= 0 {
			return strength.LoadCase{}, "", fmt.Errorf("compression needs a positive --length")
		}
		if rateMuX <= 0 || rateMuX > 3 || rateMuY <= 0 || rateMuY > 3 {
			return strength.LoadCase{}, "", fmt.Errorf("effective length factors must lie in (0, 3]")
		}
		return strength.LoadCase{
				Kind: strength.Compression,
				N:    rateForce * 1e3,
				LefX: rateMuX * rateLength * 1e3,
				LefY: rateMuY * rateLength * 1e3,
			},
			fmt.Sprintf("central compression, N = %.1f kN, L = %.2f m (μx %.2f, μy %.2f)",
				rateForce, rateLength, rateMuX, rateMuY), nil
	case "bending":
		if rateMoment <= 0 {
			return strength.LoadCase{}, "", fmt.Errorf("bending needs a positive --moment")
		}
		if rateShear < 0 {
			return strength.LoadCase{}, "", fmt.Errorf("shear force cannot be negative")
		}
		return strength.LoadCase{Kind: strength.Bending, M: rateMoment * 1e6, Q: rateShear * 1e3},
			fmt.Sprintf("bending, M = %.1f kN·m, Q = %.1f kN", rateMoment, rateShear), nil
	}
	return strength.LoadCase{}, "", fmt.Errorf("unknown load case %q (expected tension, compression or bending)", rateLoad)
}

func runRate(cmd *cobra.Command, args []string) {
	p, err := rateSection.profile()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	mat, err := rateMaterial.material(p)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	lc, loadDesc, err := buildRateLoadCase()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	exposure, err := thermal.ParseExposure(rateExposure)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// 1. Utilization factor.
	res, err := strength.Compute(lc, p, mat, strength.Variant{BoxChannel: rateBox})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if res.Fault != strength.FaultNone || math.IsInf(res.GammaT, 1) {
		fmt.Printf("Error: utilization could not be computed (%s); the member cannot be rated\n", res.Fault)
		return
	}

	// 2. Critical temperature.
	table := sp16.ReductionTableFor(sp16.GroupForGrade(mat.Grade))
	crit := table.CriticalTemperature(res.GammaT)

	// 3. Section factor.
	perim, err := thermal.HeatedPerimeter(p.Shape, p.Dims, exposure)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	deltaNp, err := thermal.ReducedThickness(p.A, perim.PerimeterMM)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	amV := thermal.SectionFactor(deltaNp)

	// 4. Heating simulation.
	sim, err := thermal.Simulate(amV, crit.TempC, rateMax, rateDt)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FIRE-RESISTANCE RATING - SP 16.13330 / GOST 30247")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printProfileBlock(p)
	printMaterialBlock(mat)

	fmt.Println("LOAD CASE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n\n", loadDesc)

	printStrengthBlock(res)

	fmt.Println("CRITICAL TEMPERATURE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Strength group:\t%s\n", table.Group)
	fmt.Fprintf(w, "  t_cr:\t%.1f °C\n", crit.TempC)
	if crit.Trace != nil {
		fmt.Fprintf(w, "  Bracketing nodes:\t(%.0f °C, %.2f) … (%.0f °C, %.2f)\n",
			crit.Trace.T1, crit.Trace.F1, crit.Trace.T2, crit.Trace.F2)
	}
	if crit.Saturated {
		fmt.Fprintf(w, "  Note:\tsaturated at the table boundary\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("HEATED PERIMETER:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Exposure:\t%s\n", exposure)
	fmt.Fprintf(w, "  Perimeter:\t%.0f mm\n", perim.PerimeterMM)
	if perim.Degraded {
		fmt.Fprintf(w, "  Note:\tcircular tube has no face to shield; 4-sided formula used\n")
	}
	w.Flush()
	fmt.Println()

	printSimulationBlock(sim)

	if rateRequired > 0 {
		meets := sim.State != thermal.Crossed || sim.RatingMin >= rateRequired
		verdict := "DOES NOT MEET"
		if meets {
			verdict = "MEETS"
		}
		fmt.Printf("  Required rating: %.0f min — the member %s the requirement.\n\n", rateRequired, verdict)
	}

	if rateAscii {
		fmt.Println(diagram.HeatingChartASCII(sim, 70, 15))
		fmt.Println()
	}

	exportSimulation(sim, rateChart, rateCSV, rateXLSX)

	if rateReport != "" {
		rep := export.NewReport()
		rep.ObjectName = rateObject
		rep.ObjectAddress = rateAddress
		rep.Profile = p
		rep.Grade = mat.Grade
		rep.Ryn = mat.Ryn
		rep.LoadDescription = loadDesc
		rep.Strength = res
		rep.CritTemp = crit
		rep.Exposure = exposure
		rep.ReducedThicknessMM = deltaNp
		rep.AmV = amV
		rep.Simulation = sim
		rep.RequiredRatingMin = rateRequired
		rep.ChartPath = rateChart
		if err := export.ExportPDF(rateReport, rep); err != nil {
			fmt.Printf("Error: report export failed: %v\n", err)
		} else {
			fmt.Printf("  Report saved to %s\n", rateReport)
		}
	}
}
