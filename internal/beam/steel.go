package beam

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gosbc/internal/caseparser"
	"github.com/alexiusacademia/gosbc/internal/is800"
)

// Check names, in report order
const (
	MomentCheck     = "Moment Capacity Check"
	ShearCheck      = "Shear Capacity Check"
	DeflectionCheck = "Deflection Check"
)

// ErrDivisionByZero is returned when the deflection denominator vanishes
var ErrDivisionByZero = errors.New("float division by zero")

// Field is one labelled value of a check
type Field struct {
	Label string
	Value float64
}

// CheckResult holds the values used by one check and its outcome
type CheckResult struct {
	Name   string
	Fields []Field
	Pass   bool
}

// Status renders the outcome the way the report prints it
func (c CheckResult) Status() string {
	if c.Pass {
		return "Pass"
	}
	return "Fail"
}

// CaseResult holds the three checks of one test case in report order
type CaseResult struct {
	Checks []CheckResult
}

// Check returns the named check, or false if the case does not carry it
func (r CaseResult) Check(name string) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return CheckResult{}, false
}

// Passed reports whether every check passed
func (r CaseResult) Passed() bool {
	for _, c := range r.Checks {
		if !c.Pass {
			return false
		}
	}
	return true
}

// MomentCapacity returns the design bending strength Md = Z·fy·(1 + P/γm0)
func MomentCapacity(z, fy, p float64, f is800.Factors) float64 {
	return z * fy * (1 + p/f.GammaM0)
}

// MomentLimit returns the simply supported upper bound 1.2·Z·fy/γm0
func MomentLimit(z, fy float64, f is800.Factors) float64 {
	return f.MomentLimitFactor * z * fy / f.GammaM0
}

// ShearCapacity returns Vd = 0.6·A·fy/γm0 and whether it covers the applied shear
func ShearCapacity(shearForce, area, fy float64, f is800.Factors) (float64, bool) {
	vd := f.ShearStressFactor * area * fy / f.GammaM0
	return vd, vd >= shearForce
}

// PermissibleDeflection returns span/250
func PermissibleDeflection(span float64, f is800.Factors) float64 {
	return span / f.DeflectionRatio
}

// Deflection returns the midspan deflection 5·M·L²/(48·E·I) and whether it
// stays within the permissible limit. L² is formed before it scales 5·M;
// regrouping changes the last reported digit. The caller guarantees E·I != 0.
func Deflection(span, moment, i float64, f is800.Factors) (float64, bool) {
	delta := (5 * moment * (span * span)) / (48 * f.E * i)
	return delta, delta <= PermissibleDeflection(span, f)
}

// DesignFlexuralMember runs the moment, shear and deflection checks for one case
func DesignFlexuralMember(fm caseparser.FieldMap, f is800.Factors) (*CaseResult, error) {
	m, err := MemberFromFields(fm)
	if err != nil {
		return nil, err
	}
	return m.Check(f)
}

// Member is a steel flexural member with its applied actions
type Member struct {
	Span       float64 // mm
	Moment     float64 // kN·m
	ShearForce float64 // kN
	Fy         float64 // MPa
	Z          float64 // mm³
	I          float64 // mm⁴
	Area       float64 // mm²
}

// MemberFromFields looks up every required field of fm
func MemberFromFields(fm caseparser.FieldMap) (*Member, error) {
	if err := fm.Require(); err != nil {
		return nil, err
	}

	m := &Member{}
	targets := []struct {
		key string
		dst *float64
	}{
		{caseparser.FieldSpan, &m.Span},
		{caseparser.FieldMoment, &m.Moment},
		{caseparser.FieldShearForce, &m.ShearForce},
		{caseparser.FieldYieldStrength, &m.Fy},
		{caseparser.FieldSectionModulus, &m.Z},
		{caseparser.FieldMomentOfInertia, &m.I},
		{caseparser.FieldCrossSectionArea, &m.Area},
	}
	for _, t := range targets {
		v, err := fm.Get(t.key)
		if err != nil {
			return nil, err
		}
		*t.dst = v
	}
	return m, nil
}

// Check evaluates the member. The moment check passes only when
// Md <= applied moment and Md < 1.2·Z·fy/γm0.
func (m *Member) Check(f is800.Factors) (*CaseResult, error) {
	if f.E*m.I == 0 {
		return nil, fmt.Errorf("deflection check: %w (E=%.2f, I=%.2f)", ErrDivisionByZero, f.E, m.I)
	}

	md := MomentCapacity(m.Z, m.Fy, f.SectionFactor, f)
	momentLimit := MomentLimit(m.Z, m.Fy, f)
	momentPass := md <= m.Moment && md < momentLimit

	vd, shearPass := ShearCapacity(m.ShearForce, m.Area, m.Fy, f)

	delta, deflectionPass := Deflection(m.Span, m.Moment, m.I, f)

	return &CaseResult{
		Checks: []CheckResult{
			{
				Name: MomentCheck,
				Fields: []Field{
					{"Applied Moment (kN·m)", m.Moment},
					{"Moment Capacity (kN·m)", md},
				},
				Pass: momentPass,
			},
			{
				Name: ShearCheck,
				Fields: []Field{
					{"Applied Shear Force (kN)", m.ShearForce},
					{"Shear Capacity (kN)", vd},
				},
				Pass: shearPass,
			},
			{
				Name: DeflectionCheck,
				Fields: []Field{
					{"Calculated Deflection (mm)", delta},
					{"Permissible Deflection (mm)", PermissibleDeflection(m.Span, f)},
				},
				Pass: deflectionPass,
			},
		},
	}, nil
}

// Utilization holds demand over capacity for each check
type Utilization struct {
	Moment     float64
	Shear      float64
	Deflection float64
}

// Utilization returns applied/capacity ratios. Ratios with a zero capacity are +Inf.
func (m *Member) Utilization(f is800.Factors) Utilization {
	md := MomentCapacity(m.Z, m.Fy, f.SectionFactor, f)
	vd, _ := ShearCapacity(m.ShearForce, m.Area, m.Fy, f)
	delta, _ := Deflection(m.Span, m.Moment, m.I, f)
	return Utilization{
		Moment:     ratio(m.Moment, md),
		Shear:      ratio(m.ShearForce, vd),
		Deflection: ratio(delta, PermissibleDeflection(m.Span, f)),
	}
}

// DeflectedShape samples the elastic curve of a simply supported beam under
// the uniform load w = 8M/L² that produces the given midspan moment. The curve
// peaks at the value Deflection returns. Points are (x, y) with y positive down.
func DeflectedShape(span, moment, i float64, f is800.Factors, n int) (xs, ys []float64) {
	if n < 2 || span <= 0 || f.E*i == 0 {
		return nil, nil
	}
	w := 8 * moment / (span * span)
	xs = make([]float64, n)
	ys = make([]float64, n)
	for k := 0; k < n; k++ {
		x := span * float64(k) / float64(n-1)
		xs[k] = x
		ys[k] = w * x * (span*span*span - 2*span*x*x + x*x*x) / (24 * f.E * i)
	}
	return xs, ys
}

func ratio(demand, capacity float64) float64 {
	if capacity == 0 {
		return math.Inf(1)
	}
	return demand / capacity
}
