// Package export writes calculation results to CSV, XLSX and PDF files
// for use outside the terminal.
package export

import (
	"time"

	"github.com/google/uuid"

	"github.com/gosteel/firecalc/internal/section"
	"github.com/gosteel/firecalc/internal/sp16"
	"github.com/gosteel/firecalc/internal/strength"
	"github.com/gosteel/firecalc/internal/thermal"
)

// Report aggregates the results of one full rating calculation in a
// serializable form for the document generator.
type Report struct {
	ID          string
	GeneratedAt time.Time

	ObjectName    string
	ObjectAddress string

	Profile *section.Profile
	Grade   string
	Ryn     float64 // MPa

	LoadDescription string
	Strength        *strength.Result
	CritTemp        sp16.CriticalTempResult

	Exposure           thermal.Exposure
	ReducedThicknessMM float64
	AmV                float64 // 1/m
	Simulation         *thermal.Simulation

	// RequiredRatingMin is the rating demanded of the member; zero means
	// no requirement was given and the conclusion is omitted.
	RequiredRatingMin float64

	// ChartPath optionally points at a rendered heating chart to embed.
	ChartPath string
}

// NewReport stamps a report with an identifier and generation time.
func NewReport() *Report {
	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
	}
}
