package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/ansel1/merry"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Colour per combination
var comboColors = map[tower.Combo]color.RGBA{
	tower.Gravity: {R: 245, G: 158, B: 11, A: 255}, // amber
	tower.Wind:    {R: 59, G: 130, B: 246, A: 255}, // blue
	tower.Seismic: {R: 239, G: 68, B: 68, A: 255},  // red
}

// ProfilePlot builds a plot of stress (x) against level (y) for one pier,
// one line per combination
func ProfilePlot(pier tower.PierID, series []tower.Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Stress Profile - Pier %s", pier)
	p.X.Label.Text = "Stress (kPa)"
	p.Y.Label.Text = "Level"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}

		xys := make(plotter.XYs, len(s.Points))
		for i, pt := range s.Points {
			xys[i] = plotter.XY{X: pt.Stress, Y: float64(pt.Level)}
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, merry.Prependf(err, "plotting %s", s.Combo)
		}
		line.LineStyle.Width = vg.Points(2)
		if c, ok := comboColors[s.Combo]; ok {
			line.LineStyle.Color = c
		}
		p.Add(line)
		p.Legend.Add(string(s.Combo), line)
	}

	return p, nil
}

// ExportProfile writes the stress profile of a pier to an image file.
// The format follows the extension (png, svg, pdf); anything else gets ".png" appended.
func ExportProfile(pier tower.PierID, series []tower.Series, filename string) error {
	p, err := ProfilePlot(pier, series)
	if err != nil {
		return err
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return merry.Prepend(err, "creating output directory")
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return merry.Prependf(err, "saving %s", filename)
	}
	return nil
}
