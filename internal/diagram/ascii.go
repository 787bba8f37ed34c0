package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// DeflectionData holds a sampled elastic curve for drawing
type DeflectionData struct {
	Title string
	X     []float64 // position along the span (mm)
	Y     []float64 // deflection, positive down (mm)
	Limit float64   // permissible deflection (mm), 0 to omit
}

func (d DeflectionData) title() string {
	if d.Title != "" {
		return d.Title
	}
	return "Deflected Shape"
}

// Max returns the largest deflection in the sample
func (d DeflectionData) Max() float64 {
	var peak float64
	for _, y := range d.Y {
		peak = math.Max(peak, y)
	}
	return peak
}

// ASCIIDeflectedShape draws the elastic curve as a terminal chart, sagging
// downward like the beam does
func ASCIIDeflectedShape(data DeflectionData, width, height int) string {
	if len(data.Y) < 2 {
		return ""
	}

	sag := make([]float64, len(data.Y))
	for i, y := range data.Y {
		sag[i] = -y
	}

	caption := fmt.Sprintf("%s, max %.4g mm", data.title(), data.Max())
	if data.Limit > 0 {
		caption += fmt.Sprintf(" (limit %.4g mm)", data.Limit)
	}

	return asciigraph.Plot(sag,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}

// UtilizationBar draws a fixed-width bar for a demand/capacity ratio.
// Ratios above 1 fill the bar and are marked with "!".
func UtilizationBar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}

	filled := int(math.Round(math.Min(ratio, 1) * float64(width)))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if ratio > 1 {
		bar += "!"
	}
	return bar
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-fills s to n runes; %-*s counts bytes and misaligns "·" or "³"
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
