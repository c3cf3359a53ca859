package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gosteel/firecalc/internal/section"
	"github.com/gosteel/firecalc/internal/sp16"
	"github.com/gosteel/firecalc/internal/strength"
)

// sectionFlags is the shared geometry flag set of the strength, heat and
// rate commands.
type sectionFlags struct {
	shape       string
	designation string
	h, b        float64
	tw, tf      float64
	t, d        float64
}

func (f *sectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.shape, "shape", "s", "", "Section shape: ibeam, channel, angle, recttube, circtube [required]")
	cmd.Flags().StringVar(&f.designation, "designation", "", "Catalog designation (overrides parametric dimensions)")
	cmd.Flags().Float64Var(&f.h, "height", 0, "Section height h (mm)")
	cmd.Flags().Float64Var(&f.b, "width", 0, "Flange width b (mm)")
	cmd.Flags().Float64Var(&f.tw, "tw", 0, "Web thickness (mm)")
	cmd.Flags().Float64Var(&f.tf, "tf", 0, "Flange thickness (mm)")
	cmd.Flags().Float64VarP(&f.t, "thickness", "t", 0, "Wall thickness (mm), tubes")
	cmd.Flags().Float64VarP(&f.d, "diameter", "d", 0, "Outer diameter (mm), circular tubes")
	cmd.MarkFlagRequired("shape")
}

func (f *sectionFlags) profile() (*section.Profile, error) {
	return resolveProfile(f.shape, f.designation, f.h, f.b, f.tw, f.tf, f.t, f.d)
}

// materialFlags is the shared steel-grade flag set.
type materialFlags struct {
	grade string
	ryn   float64
}

func (f *materialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.grade, "grade", "g", "C245", "Steel grade (C235…C390)")
	cmd.Flags().Float64Var(&f.ryn, "ryn", 0, "Override normative yield strength Ryn (MPa)")
}

func (f *materialFlags) material(p *section.Profile) (strength.Material, error) {
	return resolveMaterial(f.grade, f.ryn, p)
}

// resolveProfile builds a section profile from either a GOST catalog
// designation or parametric dimensions (all in mm). Designation wins if
// both are given.
func resolveProfile(shapeName, designation string, h, b, tw, tf, t, d float64) (*section.Profile, error) {
	shape, err := section.ParseShape(shapeName)
	if err != nil {
		return nil, err
	}
	if designation != "" {
		return section.DefaultCatalog().Lookup(shape, designation)
	}
	switch shape {
	case section.IBeam:
		return section.ComputeIBeam(h, b, tw, tf)
	case section.Channel:
		return section.ComputeChannel(h, b, tw, tf)
	case section.RectTube:
		return section.ComputeRectTube(h, b, t)
	case section.CircTube:
		return section.ComputeCircTube(d, t)
	case section.Angle:
		return nil, fmt.Errorf("angle sections are catalog-only; pass --designation (see 'firecalc section catalog --shape angle')")
	}
	return nil, fmt.Errorf("unknown shape %q", shapeName)
}

// resolveMaterial builds the steel material, looking up Ryn by grade and
// governing element thickness unless an explicit override is given.
func resolveMaterial(grade string, rynOverride float64, p *section.Profile) (strength.Material, error) {
	mat := strength.Material{Grade: grade, E: sp16.E}
	if rynOverride > 0 {
		mat.Ryn = rynOverride
		return mat, nil
	}
	if !sp16.IsKnownGrade(grade) {
		return mat, fmt.Errorf("unknown steel grade %q (known: %v)", grade, sp16.Grades)
	}
	th := p.FlangeThickness()
	if th <= 0 {
		return mat, fmt.Errorf("cannot determine element thickness for the Ryn lookup; pass --ryn explicitly")
	}
	ryn, err := sp16.Ryn(grade, th)
	if err != nil {
		return mat, err
	}
	mat.Ryn = ryn
	return mat, nil
}

// printProfileBlock writes the section-properties table in the cm-based
// units engineers expect on paper.
func printProfileBlock(p *section.Profile) {
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if p.Designation != "" {
		fmt.Fprintf(w, "  Designation:\t%s\n", p.Designation)
	}
	fmt.Fprintf(w, "  Shape:\t%s\n", p.Shape)
	fmt.Fprintf(w, "  Area (A):\t%.2f cm²\n", p.A/100)
	fmt.Fprintf(w, "  Ix:\t%.2f cm⁴\n", p.Ix/1e4)
	fmt.Fprintf(w, "  Iy:\t%.2f cm⁴\n", p.Iy/1e4)
	fmt.Fprintf(w, "  ix:\t%.2f cm\n", p.RadX/10)
	fmt.Fprintf(w, "  iy:\t%.2f cm\n", p.RadY/10)
	if p.IMin > 0 {
		fmt.Fprintf(w, "  i_min:\t%.2f cm\n", p.IMin/10)
	}
	if p.Wx > 0 {
		fmt.Fprintf(w, "  Wx:\t%.2f cm³\n", p.Wx/1e3)
	}
	if p.Sx > 0 {
		fmt.Fprintf(w, "  Sx:\t%.2f cm³\n", p.Sx/1e3)
	}
	if p.Aw > 0 {
		fmt.Fprintf(w, "  Flange area (Af):\t%.2f cm²\n", p.Af/100)
		fmt.Fprintf(w, "  Web area (Aw):\t%.2f cm²\n", p.Aw/100)
	}
	w.Flush()
	fmt.Println()
}
