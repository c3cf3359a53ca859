package section

import (
	"math"
	"sort"
	"testing"
)

func TestCatalogLookupIBeam(t *testing.T) {
	p, err := DefaultCatalog().Lookup(IBeam, "I20")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if p.Designation != "I20" || p.Shape != IBeam {
		t.Errorf("identity: %s/%s", p.Shape, p.Designation)
	}
	// Published 26.8 cm² must come back in mm².
	if math.Abs(p.A-2680) > 1 {
		t.Errorf("A = %.1f mm², want 2680", p.A)
	}
	if p.Dims.H != 200 || p.Dims.B != 100 {
		t.Errorf("dims %gx%g, want 200x100", p.Dims.H, p.Dims.B)
	}
	// Radii come back in mm.
	if p.RadX < 50 || p.RadX > 100 {
		t.Errorf("ix = %.1f mm out of the plausible range for a 200 mm I-beam", p.RadX)
	}
}

func TestCatalogLookupAngle(t *testing.T) {
	p, err := DefaultCatalog().Lookup(Angle, "L75x6")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if p.IMin <= 0 {
		t.Error("angle profile must carry a minor principal radius")
	}
	if p.IMin >= p.RadX {
		t.Errorf("i_min %.2f must be below the geometric-axis radius %.2f", p.IMin, p.RadX)
	}
	if p.Ix != p.Iy {
		t.Error("equal-leg angle: Ix and Iy about the leg axes must match")
	}
}

func TestCatalogLookupPipe(t *testing.T) {
	p, err := DefaultCatalog().Lookup(CircTube, "159x5")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if p.Designation != "159x5" {
		t.Errorf("designation %q, want 159x5", p.Designation)
	}
	// Closed-form properties from D and t.
	wantA := math.Pi * (159*159 - 149*149) / 4
	if math.Abs(p.A-wantA) > 1e-6 {
		t.Errorf("A = %.2f, want %.2f", p.A, wantA)
	}
}

func TestCatalogLookupUnknown(t *testing.T) {
	if _, err := DefaultCatalog().Lookup(IBeam, "I999"); err == nil {
		t.Error("expected an error for a designation not in the catalog")
	}
	if _, err := DefaultCatalog().Lookup(RectTube, "100x60x4"); err == nil {
		t.Error("rectangular tubes are parametric only; lookup must fail")
	}
}

func TestCatalogListSorted(t *testing.T) {
	for _, shape := range []Shape{IBeam, Channel, Angle, CircTube} {
		names := DefaultCatalog().List(shape)
		if len(names) == 0 {
			t.Errorf("no catalog entries for %s", shape)
			continue
		}
		if !sort.StringsAreSorted(names) {
			t.Errorf("%s designations are not sorted", shape)
		}
	}
}

func TestFlangeThickness(t *testing.T) {
	ib, _ := DefaultCatalog().Lookup(IBeam, "I20")
	if ib.FlangeThickness() != ib.Dims.Tf {
		t.Errorf("I-beam governing thickness = %.1f, want flange %.1f", ib.FlangeThickness(), ib.Dims.Tf)
	}
	pipe, _ := DefaultCatalog().Lookup(CircTube, "159x5")
	if pipe.FlangeThickness() != 5 {
		t.Errorf("pipe governing thickness = %.1f, want wall 5", pipe.FlangeThickness())
	}
}
