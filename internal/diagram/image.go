package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportDeflectedShape exports the elastic curve of a member to an image file.
// The format follows the extension (png, svg, pdf); anything else gets .png
// appended. It returns the path actually written.
func ExportDeflectedShape(data DeflectionData, filename string) (string, error) {
	if len(data.X) < 2 || len(data.X) != len(data.Y) {
		return "", fmt.Errorf("invalid deflected shape: %d x values, %d y values", len(data.X), len(data.Y))
	}

	p := plot.New()
	p.Title.Text = data.title()
	p.X.Label.Text = "Position along span (mm)"
	p.Y.Label.Text = "Deflection (mm)"

	// Plot downward deflection as negative y
	curve := make(plotter.XYs, len(data.X))
	for i := range data.X {
		curve[i] = plotter.XY{X: data.X[i], Y: -data.Y[i]}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return "", err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Undeformed axis
	axis, err := plotter.NewLine(plotter.XYs{
		{X: data.X[0], Y: 0},
		{X: data.X[len(data.X)-1], Y: 0},
	})
	if err != nil {
		return "", err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	// Permissible deflection
	if data.Limit > 0 {
		limit, err := plotter.NewLine(plotter.XYs{
			{X: data.X[0], Y: -data.Limit},
			{X: data.X[len(data.X)-1], Y: -data.Limit},
		})
		if err != nil {
			return "", err
		}
		limit.LineStyle.Width = vg.Points(1.5)
		limit.LineStyle.Color = color.RGBA{R: 200, G: 0, B: 0, A: 255}
		limit.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(limit)
		p.Legend.Add(fmt.Sprintf("Permissible (%.3f mm)", data.Limit), limit)
	}
	p.Legend.Add(fmt.Sprintf("Deflected shape (max %.4g mm)", data.Max()), line)
	p.Legend.Top = false

	width := 8 * vg.Inch
	height := 4 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", fmt.Errorf("failed to save diagram: %w", err)
	}
	return filename, nil
}
