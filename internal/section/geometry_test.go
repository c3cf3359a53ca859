package section

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeIBeam(t *testing.T) {
	p, err := ComputeIBeam(200, 100, 6, 10)
	if err != nil {
		t.Fatalf("ComputeIBeam: %v", err)
	}

	// Closed form: A = 2·b·tf + (h − 2·tf)·tw
	wantA := 2*100*10.0 + 180*6.0
	if !almostEqual(p.A, wantA, 1e-9) {
		t.Errorf("A = %.2f, want %.2f", p.A, wantA)
	}

	// Ix = b·h³/12 − 2·((b−tw)/2)·(h−2tf)³/12
	wantIx := 100*math.Pow(200, 3)/12 - 2*47*math.Pow(180, 3)/12
	if !almostEqual(p.Ix, wantIx, 1e-6) {
		t.Errorf("Ix = %.2f, want %.2f", p.Ix, wantIx)
	}

	if !almostEqual(p.Wx, wantIx/100, 1e-6) {
		t.Errorf("Wx = %.2f, want %.2f", p.Wx, wantIx/100)
	}
	if p.RadX <= p.RadY {
		t.Errorf("expected ix > iy for an I-beam, got ix=%.2f iy=%.2f", p.RadX, p.RadY)
	}
	if p.Af != 1000 || p.Aw != 1080 {
		t.Errorf("flange/web areas = %.0f/%.0f, want 1000/1080", p.Af, p.Aw)
	}
	if p.Tw != 6 {
		t.Errorf("shear web thickness = %.1f, want 6", p.Tw)
	}
}

func TestComputeChannelCentroid(t *testing.T) {
	p, err := ComputeChannel(160, 64, 5, 8.4)
	if err != nil {
		t.Fatalf("ComputeChannel: %v", err)
	}
	if p.A <= 0 || p.Ix <= 0 || p.Iy <= 0 {
		t.Fatalf("non-positive derived properties: A=%.1f Ix=%.1f Iy=%.1f", p.A, p.Ix, p.Iy)
	}
	// The weak axis of a channel is far weaker than the strong axis.
	if p.Iy >= p.Ix {
		t.Errorf("expected Iy < Ix, got Iy=%.1f Ix=%.1f", p.Iy, p.Ix)
	}
}

func TestComputeRectTube(t *testing.T) {
	p, err := ComputeRectTube(100, 60, 4)
	if err != nil {
		t.Fatalf("ComputeRectTube: %v", err)
	}
	wantA := 100*60.0 - 92*52.0
	if !almostEqual(p.A, wantA, 1e-9) {
		t.Errorf("A = %.2f, want %.2f", p.A, wantA)
	}
	if p.Tw != 8 {
		t.Errorf("shear web thickness = %.1f, want 8 (both walls)", p.Tw)
	}
}

func TestComputeCircTube(t *testing.T) {
	p, err := ComputeCircTube(159, 5)
	if err != nil {
		t.Fatalf("ComputeCircTube: %v", err)
	}
	wantA := math.Pi * (159*159 - 149*149) / 4
	if !almostEqual(p.A, wantA, 1e-6) {
		t.Errorf("A = %.2f, want %.2f", p.A, wantA)
	}
	if p.Ix != p.Iy || p.RadX != p.RadY {
		t.Error("circular tube must be axisymmetric")
	}
	if p.Tw != 0 {
		t.Errorf("pipe shear thickness should stay zero, got %.1f", p.Tw)
	}
}

func TestGeometryRejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (*Profile, error)
	}{
		{"zero height", func() (*Profile, error) { return ComputeIBeam(0, 100, 6, 10) }},
		{"negative width", func() (*Profile, error) { return ComputeIBeam(200, -100, 6, 10) }},
		{"web wider than flange", func() (*Profile, error) { return ComputeIBeam(200, 6, 6, 10) }},
		{"flanges eat the height", func() (*Profile, error) { return ComputeIBeam(20, 100, 6, 10) }},
		{"channel web too thick", func() (*Profile, error) { return ComputeChannel(160, 5, 5, 8) }},
		{"tube wall too thick", func() (*Profile, error) { return ComputeRectTube(100, 60, 30) }},
		{"pipe wall too thick", func() (*Profile, error) { return ComputeCircTube(100, 50) }},
	}
	for _, c := range cases {
		_, err := c.fn()
		if err == nil {
			t.Errorf("%s: expected an error", c.name)
			continue
		}
		var ge *GeometryError
		if !errors.As(err, &ge) {
			t.Errorf("%s: expected a GeometryError, got %T", c.name, err)
		}
	}
}

func TestParseShape(t *testing.T) {
	for name, want := range map[string]Shape{
		"ibeam": IBeam, "i": IBeam,
		"channel": Channel, "c": Channel,
		"angle": Angle, "l": Angle,
		"recttube": RectTube, "box": RectTube,
		"circtube": CircTube, "pipe": CircTube,
	} {
		got, err := ParseShape(name)
		if err != nil {
			t.Errorf("ParseShape(%q): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseShape(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseShape("hexagon"); err == nil {
		t.Error("expected an error for an unknown shape")
	}
}
