package thermal

import (
	"math"
	"testing"

	"github.com/gosteel/firecalc/internal/section"
)

func TestHeatedPerimeterOpenShapes(t *testing.T) {
	dims := section.Dimensions{H: 200, B: 100, Tw: 6, Tf: 10}

	four, err := HeatedPerimeter(section.IBeam, dims, FourSided)
	if err != nil {
		t.Fatalf("HeatedPerimeter: %v", err)
	}
	if want := 2*200 + 4*100 - 2*6.0; four.PerimeterMM != want {
		t.Errorf("4-sided I-beam perimeter = %.0f, want %.0f", four.PerimeterMM, want)
	}

	three, err := HeatedPerimeter(section.IBeam, dims, ThreeSided)
	if err != nil {
		t.Fatalf("HeatedPerimeter: %v", err)
	}
	if want := 2*200 + 3*100 - 2*6.0; three.PerimeterMM != want {
		t.Errorf("3-sided I-beam perimeter = %.0f, want %.0f", three.PerimeterMM, want)
	}
	if three.PerimeterMM >= four.PerimeterMM {
		t.Error("shielding one face must reduce the perimeter")
	}

	// Channels share the I-beam contour.
	ch, err := HeatedPerimeter(section.Channel, dims, FourSided)
	if err != nil {
		t.Fatalf("HeatedPerimeter: %v", err)
	}
	if ch.PerimeterMM != four.PerimeterMM {
		t.Errorf("channel perimeter %.0f differs from I-beam %.0f", ch.PerimeterMM, four.PerimeterMM)
	}
}

func TestHeatedPerimeterTubes(t *testing.T) {
	rect, err := HeatedPerimeter(section.RectTube, section.Dimensions{H: 100, B: 60, T: 4}, FourSided)
	if err != nil {
		t.Fatalf("HeatedPerimeter: %v", err)
	}
	if rect.PerimeterMM != 320 {
		t.Errorf("rect tube perimeter = %.0f, want 320", rect.PerimeterMM)
	}

	pipe, err := HeatedPerimeter(section.CircTube, section.Dimensions{D: 159, T: 5}, FourSided)
	if err != nil {
		t.Fatalf("HeatedPerimeter: %v", err)
	}
	if math.Abs(pipe.PerimeterMM-math.Pi*159) > 1e-9 {
		t.Errorf("pipe perimeter = %.2f, want pi·159", pipe.PerimeterMM)
	}
	if pipe.Degraded {
		t.Error("4-sided pipe exposure must not be degraded")
	}
}

func TestHeatedPerimeterPipeThreeSidedDegrades(t *testing.T) {
	pipe, err := HeatedPerimeter(section.CircTube, section.Dimensions{D: 159, T: 5}, ThreeSided)
	if err != nil {
		t.Fatalf("HeatedPerimeter: %v", err)
	}
	if !pipe.Degraded {
		t.Error("a pipe has no flat face to shield; 3-sided must be marked degraded")
	}
	if math.Abs(pipe.PerimeterMM-math.Pi*159) > 1e-9 {
		t.Errorf("degraded pipe must keep the full contour, got %.2f", pipe.PerimeterMM)
	}
}

func TestReducedThicknessAndSectionFactor(t *testing.T) {
	delta, err := ReducedThickness(3080, 788)
	if err != nil {
		t.Fatalf("ReducedThickness: %v", err)
	}
	if math.Abs(delta-3080.0/788.0) > 1e-12 {
		t.Errorf("delta = %.4f, want %.4f", delta, 3080.0/788.0)
	}
	if amv := SectionFactor(delta); math.Abs(amv-1000/delta) > 1e-9 {
		t.Errorf("Am/V = %.2f, want %.2f", amv, 1000/delta)
	}

	if _, err := ReducedThickness(0, 788); err == nil {
		t.Error("expected an error for zero area")
	}
	if _, err := ReducedThickness(3080, 0); err == nil {
		t.Error("expected an error for zero perimeter")
	}
}

func TestParseExposure(t *testing.T) {
	for s, want := range map[string]Exposure{
		"4": FourSided, "4-sided": FourSided, "four": FourSided,
		"3": ThreeSided, "3-sided": ThreeSided, "three": ThreeSided,
	} {
		got, err := ParseExposure(s)
		if err != nil {
			t.Errorf("ParseExposure(%q): %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseExposure(%q) = %v, want %v", s, got, want)
		}
	}
	if _, err := ParseExposure("2"); err == nil {
		t.Error("expected an error for an unsupported exposure")
	}
}
