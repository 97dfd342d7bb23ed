package output

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/KwintenF/FastEMRIWaveforms/internal/monitoring"
)

// maxPlotPoints caps the points per line; longer series are decimated.
const maxPlotPoints = 20000

// StrainPlot builds a plot of both channels of h against time.
func StrainPlot(h []complex128, dt float64, title string) (*plot.Plot, error) {
	step := 1
	if len(h) > maxPlotPoints {
		step = (len(h) + maxPlotPoints - 1) / maxPlotPoints
	}

	ptsI := make(plotter.XYs, 0, len(h)/step+1)
	ptsII := make(plotter.XYs, 0, len(h)/step+1)
	for i := 0; i < len(h); i += step {
		t := float64(i) * dt
		ptsI = append(ptsI, plotter.XY{X: t, Y: real(h[i])})
		ptsII = append(ptsII, plotter.XY{X: t, Y: -imag(h[i])})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Strain"

	for _, ch := range []struct {
		label string
		pts   plotter.XYs
		color color.Color
	}{
		{"h_I", ptsI, color.RGBA{R: 31, G: 119, B: 180, A: 255}},
		{"h_II", ptsII, color.RGBA{R: 255, G: 127, B: 14, A: 255}},
	} {
		line, err := plotter.NewLine(ch.pts)
		if err != nil {
			return nil, fmt.Errorf("plot %s: %w", ch.label, err)
		}
		line.Color = ch.color
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(ch.label, line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p, nil
}

// SavePlot renders StrainPlot to a PNG (or any extension gonum/plot
// supports) at path.
func SavePlot(path string, h []complex128, dt float64, title string) error {
	p, err := StrainPlot(h, dt, title)
	if err != nil {
		return err
	}
	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	monitoring.Logf("output: plotted %d samples to %s", len(h), path)

	return nil
}
