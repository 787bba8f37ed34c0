package section

import (
	"math"
	"sort"
)

// integrationStrips is the number of horizontal strips used for the plastic modulus
const integrationStrips = 2000

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *SectionProperties {
	props := &SectionProperties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = s.calculateAreaAndCentroid()
	if props.Area == 0 {
		return props
	}

	// Parallel axis theorem from the origin to the centroid
	props.Ixx = s.secondMomentAboutOrigin() - props.Area*props.CentroidY*props.CentroidY

	extreme := math.Max(props.MaxY-props.CentroidY, props.CentroidY-props.MinY)
	if extreme > 0 {
		props.Ze = props.Ixx / extreme
	}

	props.PlasticAxisY, props.Zp = s.plasticModulus(props.MinY, props.MaxY)
	if props.Ze > 0 {
		props.ShapeFactor = props.Zp / props.Ze
	}

	return props
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// secondMomentAboutOrigin returns Ix about y = 0 for either winding direction
func (s *Section) secondMomentAboutOrigin() float64 {
	n := len(s.Vertices)

	var sum, signedArea float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		yi, yj := s.Vertices[i].Y, s.Vertices[j].Y
		cross := s.Vertices[i].X*yj - s.Vertices[j].X*yi
		signedArea += cross
		sum += cross * (yi*yi + yi*yj + yj*yj)
	}

	ix := sum / 12
	if signedArea < 0 {
		ix = -ix
	}
	return ix
}

// plasticModulus finds the equal-area axis and the first moment of both
// halves about it. Strips break at every vertex level so the width is linear
// inside each one and the midpoint rule integrates the area exactly.
func (s *Section) plasticModulus(minY, maxY float64) (axisY, zp float64) {
	step := (maxY - minY) / integrationStrips
	if step <= 0 {
		return minY, 0
	}

	levels := make([]float64, 0, len(s.Vertices))
	for _, v := range s.Vertices {
		levels = append(levels, v.Y)
	}
	sort.Float64s(levels)

	type strip struct{ bottom, height, area float64 }
	var strips []strip
	var total float64
	for i := 0; i+1 < len(levels); i++ {
		span := levels[i+1] - levels[i]
		if span <= 0 {
			continue
		}
		n := int(math.Ceil(span / step))
		dy := span / float64(n)
		for k := 0; k < n; k++ {
			bottom := levels[i] + float64(k)*dy
			a := s.widthAtY(bottom+dy/2) * dy
			strips = append(strips, strip{bottom, dy, a})
			total += a
		}
	}

	// Walk up from the bottom until half the area is below
	axisY = maxY
	var below float64
	for _, st := range strips {
		if below+st.area >= total/2 {
			frac := 0.0
			if st.area > 0 {
				frac = (total/2 - below) / st.area
			}
			axisY = st.bottom + frac*st.height
			break
		}
		below += st.area
	}

	for _, st := range strips {
		zp += st.area * math.Abs(st.bottom+st.height/2-axisY)
	}
	return axisY, zp
}

// WidthAtDepth calculates the width of the section at a given depth from top
// Uses horizontal line intersection with the polygon
func (s *Section) WidthAtDepth(depthFromTop float64) float64 {
	props := s.CalculateProperties()
	y := props.MaxY - depthFromTop

	return s.widthAtY(y)
}

// widthAtY calculates the width at a specific Y coordinate
func (s *Section) widthAtY(y float64) float64 {
	intersections := s.findIntersectionsAtY(y)

	if len(intersections) < 2 {
		return 0
	}

	// Sort intersections by X coordinate
	sort.Float64s(intersections)

	// Total width is the sum of all segments
	var totalWidth float64
	for i := 0; i+1 < len(intersections); i += 2 {
		totalWidth += intersections[i+1] - intersections[i]
	}

	return totalWidth
}

// findIntersectionsAtY finds all X coordinates where a horizontal line at Y intersects the polygon
func (s *Section) findIntersectionsAtY(y float64) []float64 {
	var intersections []float64
	n := len(s.Vertices)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		v1, v2 := s.Vertices[i], s.Vertices[j]

		// Check if the edge crosses the Y level
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			x := v1.X + t*(v2.X-v1.X)
			intersections = append(intersections, x)
		}
	}

	return intersections
}
