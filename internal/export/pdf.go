package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/gosteel/firecalc/internal/thermal"
)

// Page layout constants (A4 portrait in mm).
const (
	pdfMarginLeft   = 20.0
	pdfMarginTop    = 18.0
	pdfMarginRight  = 18.0
	pdfMarginBottom = 20.0
	pdfLineHeight   = 6.0
)

// ExportPDF renders a calculation report document: object information,
// section properties, the strength and critical-temperature results, the
// thermal results and an optional conclusion against a required rating,
// with the heating chart appended when available.
func ExportPDF(path string, rep *Report) error {
	if rep.Simulation == nil || rep.Strength == nil || rep.Profile == nil {
		return fmt.Errorf("report is missing calculation results")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "FIRE RESISTANCE CALCULATION REPORT", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Actual fire-resistance rating of a loaded steel structural member", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}
	line := func(format string, args ...any) {
		pdf.CellFormat(0, pdfLineHeight, tr(fmt.Sprintf(format, args...)), "", 1, "L", false, 0, "")
	}

	heading("1. Protected object")
	name := rep.ObjectName
	if name == "" {
		name = "not specified"
	}
	addr := rep.ObjectAddress
	if addr == "" {
		addr = "not specified"
	}
	line("Object: %s", name)
	line("Address: %s", addr)
	pdf.Ln(2)

	heading("2. Model and method")
	pdf.MultiCell(0, pdfLineHeight, tr(
		"The critical steel temperature is resolved from the member's load-utilization "+
			"factor per SP 16.13330, and the time for the unprotected section to reach that "+
			"temperature is obtained from a lumped-mass heat balance under the standard "+
			"fire regime of GOST 30247."), "", "J", false)
	pdf.Ln(2)

	heading("3. Section properties")
	p := rep.Profile
	desig := p.Designation
	if desig == "" {
		desig = "parametric"
	}
	line("Shape: %s (%s)", p.Shape, desig)
	line("Steel grade: %s, Ryn = %.0f MPa", rep.Grade, rep.Ryn)
	line("A = %.2f cm2", p.A/100)
	line("Ix = %.2f cm4, Iy = %.2f cm4", p.Ix/1e4, p.Iy/1e4)
	if p.Wx > 0 {
		line("Wx = %.2f cm3", p.Wx/1e3)
	}
	pdf.Ln(2)

	heading("4. Static analysis")
	line("Load case: %s", rep.LoadDescription)
	line("Utilization factor gamma_T = %.4f", rep.Strength.GammaT)
	if rep.Strength.Phi > 0 {
		line("phi = %.4f (curve %s, %s branch, governing axis %s, lambda_bar = %.3f)",
			rep.Strength.Phi, rep.Strength.Curve.Code, rep.Strength.Method,
			rep.Strength.Axis, rep.Strength.LambdaBar)
	}
	line("Critical steel temperature t_cr = %.1f °C", rep.CritTemp.TempC)
	if t := rep.CritTemp.Trace; t != nil {
		line("   interpolated between (%.0f °C, %.2f) and (%.0f °C, %.2f)", t.T1, t.F1, t.T2, t.F2)
	}
	pdf.Ln(2)

	heading("5. Thermal analysis")
	line("Exposure: %s", rep.Exposure)
	line("Reduced thickness delta_np = %.2f mm", rep.ReducedThicknessMM)
	line("Section factor Am/V = %.1f 1/m", rep.AmV)
	line("Fire-resistance rating: %s", rep.Simulation.Rating())
	pdf.Ln(2)

	if rep.RequiredRatingMin > 0 {
		heading("6. Conclusion")
		// Not crossing within the horizon means the member outlasts any
		// requirement inside it.
		verdict := "DOES NOT MEET"
		if rep.Simulation.State != thermal.Crossed || rep.Simulation.RatingMin >= rep.RequiredRatingMin {
			verdict = "MEETS"
		}
		pdf.MultiCell(0, pdfLineHeight, tr(fmt.Sprintf(
			"The actual fire-resistance rating (%s) %s the required rating of %.0f min.",
			rep.Simulation.Rating(), verdict, rep.RequiredRatingMin)), "", "J", false)
		pdf.Ln(2)
	}

	if rep.ChartPath != "" {
		pdf.AddPage()
		heading("Appendix A. Heating curves")
		pdf.ImageOptions(rep.ChartPath, pdfMarginLeft, pdf.GetY()+4, 170, 0, false,
			fpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
	}

	// Footer stamp
	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Report %s, generated %s",
		rep.ID, rep.GeneratedAt.Format("2006-01-02 15:04"))), "", 1, "L", false, 0, "")

	return pdf.OutputFileAndClose(path)
}
