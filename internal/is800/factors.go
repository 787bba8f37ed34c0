package is800

import "fmt"

// IS 800:2007 Material and Design Constants

const (
	// Modulus of elasticity for structural steel (Section 2.2.4.1)
	Es = 200000.0 // MPa

	// Partial safety factor for material, resistance governed by yielding
	// Table 5
	GammaM0 = 1.1

	// Section classification factor used in the moment capacity expression.
	// 1.0 is taken for plastic/compact sections and is not derived from input.
	SectionFactorPlastic = 1.0

	// Permissible deflection ratio, span/250 (Table 6, simplified)
	DeflectionRatio = 250.0

	// Upper limit factor on design bending strength for simply supported beams
	// Section 8.2.1.2: Md <= 1.2 Ze fy / γm0
	MomentLimitFactor = 1.2

	// Shear yield factor, Vd = 0.6 Av fy / γm0 (Section 8.4.1, fy/√3 simplified)
	ShearStressFactor = 0.6
)

// Factors bundles the design constants passed into every check.
// A Factors value is never mutated after construction.
type Factors struct {
	E                 float64 `yaml:"e"`
	GammaM0           float64 `yaml:"gamma_m0"`
	SectionFactor     float64 `yaml:"section_factor"`
	DeflectionRatio   float64 `yaml:"deflection_ratio"`
	MomentLimitFactor float64 `yaml:"moment_limit_factor"`
	ShearStressFactor float64 `yaml:"shear_stress_factor"`
}

// DefaultFactors returns the constants used by the reference checks
func DefaultFactors() Factors {
	return Factors{
		E:                 Es,
		GammaM0:           GammaM0,
		SectionFactor:     SectionFactorPlastic,
		DeflectionRatio:   DeflectionRatio,
		MomentLimitFactor: MomentLimitFactor,
		ShearStressFactor: ShearStressFactor,
	}
}

// Validate rejects factors that would divide by zero or flip a check
func (f Factors) Validate() error {
	if f.E <= 0 {
		return fmt.Errorf("invalid modulus of elasticity: E=%.2f", f.E)
	}
	if f.GammaM0 <= 0 {
		return fmt.Errorf("invalid partial safety factor: γm0=%.2f", f.GammaM0)
	}
	if f.DeflectionRatio <= 0 {
		return fmt.Errorf("invalid deflection ratio: span/%.2f", f.DeflectionRatio)
	}
	if f.SectionFactor < 0 || f.MomentLimitFactor <= 0 || f.ShearStressFactor <= 0 {
		return fmt.Errorf("invalid strength factors: P=%.2f, limit=%.2f, shear=%.2f",
			f.SectionFactor, f.MomentLimitFactor, f.ShearStressFactor)
	}
	return nil
}
