package sp16

import "testing"

func TestRynLookup(t *testing.T) {
	cases := []struct {
		grade     string
		thickness float64
		want      float64
	}{
		{"C235", 10, 235},
		{"C235", 20, 235},
		{"C235", 25, 225},
		{"C245", 8, 245},
		{"C255", 10, 255},
		{"C255", 11, 245},
		{"C345", 30, 305},
		{"C390", 10, 390},
	}
	for _, c := range cases {
		got, err := Ryn(c.grade, c.thickness)
		if err != nil {
			t.Errorf("Ryn(%s, %.0f): %v", c.grade, c.thickness, err)
			continue
		}
		if got != c.want {
			t.Errorf("Ryn(%s, %.0f) = %.0f, want %.0f", c.grade, c.thickness, got, c.want)
		}
	}
}

func TestRynRejectsUnknownGrade(t *testing.T) {
	if _, err := Ryn("C999", 10); err == nil {
		t.Error("expected an error for an unknown grade")
	}
}

func TestRynRejectsThicknessBeyondTable(t *testing.T) {
	// C345K is tabulated up to 10 mm only.
	if _, err := Ryn("C345K", 12); err == nil {
		t.Error("expected an error for thickness beyond the C345K bucket")
	}
	if _, err := Ryn("C245", 45); err == nil {
		t.Error("expected an error for thickness beyond 40 mm")
	}
	if _, err := Ryn("C245", 0); err == nil {
		t.Error("expected an error for non-positive thickness")
	}
}

func TestGroupForGrade(t *testing.T) {
	cases := map[string]StrengthGroup{
		"C235":  NormalStrength,
		"C245":  NormalStrength,
		"C255":  NormalStrength,
		"C345":  IncreasedStrength,
		"C345K": IncreasedStrength,
		"C355":  IncreasedStrength,
		"C390":  HighStrength,
	}
	for grade, want := range cases {
		if got := GroupForGrade(grade); got != want {
			t.Errorf("GroupForGrade(%s) = %s, want %s", grade, got, want)
		}
	}
}

func TestGradesAreKnown(t *testing.T) {
	for _, g := range Grades {
		if !IsKnownGrade(g) {
			t.Errorf("grade %s listed but has no Ryn entries", g)
		}
	}
}
