package section

import "fmt"

// Section represents a steel cross-section defined by its outline.
// The outline is in a local coordinate system where:
// - Y-axis points upward (bending about the horizontal centroidal axis)
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Steel yield strength (MPa), optional
	Fy float64 `json:"fy,omitempty" yaml:"fy,omitempty"`

	// Outline vertices (mm), counter-clockwise, simple polygon without holes
	Vertices []Point `json:"vertices" yaml:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"` // mm
	Y float64 `json:"y" yaml:"y"` // mm
}

// SectionProperties holds calculated geometric properties
type SectionProperties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Bending about the horizontal centroidal axis
	Ixx          float64 // Second moment of area (mm⁴)
	Ze           float64 // Elastic section modulus, Ixx / extreme fibre distance (mm³)
	Zp           float64 // Plastic section modulus (mm³)
	PlasticAxisY float64 // Equal-area axis (mm)
	ShapeFactor  float64 // Zp / Ze
}

// NewISection builds a doubly symmetric rolled or welded I-section with the
// bottom-left corner of the bottom flange at the origin
func NewISection(name string, depth, flangeWidth, flangeThickness, webThickness float64) (*Section, error) {
	if depth <= 0 || flangeWidth <= 0 || flangeThickness <= 0 || webThickness <= 0 {
		return nil, &ValidationError{msg: fmt.Sprintf("invalid I-section dimensions: d=%.2f, bf=%.2f, tf=%.2f, tw=%.2f",
			depth, flangeWidth, flangeThickness, webThickness)}
	}
	if 2*flangeThickness >= depth {
		return nil, &ValidationError{msg: fmt.Sprintf("flanges (2×%.2f mm) leave no web in %.2f mm depth", flangeThickness, depth)}
	}
	if webThickness >= flangeWidth {
		return nil, &ValidationError{msg: fmt.Sprintf("web thickness %.2f mm must be less than flange width %.2f mm", webThickness, flangeWidth)}
	}

	webLeft := (flangeWidth - webThickness) / 2
	webRight := (flangeWidth + webThickness) / 2
	top := depth - flangeThickness

	return &Section{
		Name: name,
		Vertices: []Point{
			{0, 0},
			{flangeWidth, 0},
			{flangeWidth, flangeThickness},
			{webRight, flangeThickness},
			{webRight, top},
			{flangeWidth, top},
			{flangeWidth, depth},
			{0, depth},
			{0, top},
			{webLeft, top},
			{webLeft, flangeThickness},
			{0, flangeThickness},
		},
	}, nil
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if s.Fy < 0 {
		return &ValidationError{"fy must not be negative"}
	}
	if area, _, _ := s.calculateAreaAndCentroid(); area == 0 {
		return &ValidationError{"section outline encloses no area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
