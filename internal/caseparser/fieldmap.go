package caseparser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Required field names, exactly as they appear in the input file
const (
	FieldSpan             = "Span"
	FieldMoment           = "Moment"
	FieldShearForce       = "Shear Force"
	FieldYieldStrength    = "Yield Strength"
	FieldSectionModulus   = "Section Modulus (Z)"
	FieldMomentOfInertia  = "Moment of Inertia (I)"
	FieldCrossSectionArea = "Cross-sectional Area (A)"
)

// RequiredFields lists every key a FieldMap must carry to be checked
var RequiredFields = []string{
	FieldSpan,
	FieldMoment,
	FieldShearForce,
	FieldYieldStrength,
	FieldSectionModulus,
	FieldMomentOfInertia,
	FieldCrossSectionArea,
}

// ErrMissingField is returned when a required key is absent from a FieldMap
var ErrMissingField = errors.New("missing required field")

// FieldMap holds the numeric fields of one test case keyed by field name
type FieldMap map[string]float64

// Get returns the value stored under key or an error wrapping ErrMissingField
func (fm FieldMap) Get(key string) (float64, error) {
	v, ok := fm[key]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrMissingField, key)
	}
	return v, nil
}

// Missing lists the required fields not present, in RequiredFields order
func (fm FieldMap) Missing() []string {
	var missing []string
	for _, key := range RequiredFields {
		if _, ok := fm[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// Require returns an error wrapping ErrMissingField that names every absent
// required field, or nil when the case is complete
func (fm FieldMap) Require() error {
	missing := fm.Missing()
	if len(missing) == 0 {
		return nil
	}
	quoted := make([]string, len(missing))
	for i, key := range missing {
		quoted[i] = strconv.Quote(key)
	}
	return fmt.Errorf("%w %s", ErrMissingField, strings.Join(quoted, ", "))
}
