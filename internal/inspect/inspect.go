// Package inspect prints and plots the transform pipeline for debugging.
package inspect

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"spincube/internal/frame"
	"spincube/internal/mathutil"
)

// Dump writes the FrameState as three row-major tables.
func Dump(w io.Writer, fs frame.FrameState) {
	fmt.Fprintf(w, "angle: %.6f rad (%.2f°)\n", fs.Angle, fs.Angle*180/math.Pi)
	for _, m := range []struct {
		name string
		mat  mathutil.Mat4
	}{
		{frame.UniformProjection, fs.Projection},
		{frame.UniformModel, fs.Model},
		{frame.UniformNormal, fs.Normal},
	} {
		fmt.Fprintf(w, "%s:\n", m.name)
		for r := 0; r < 4; r++ {
			fmt.Fprintf(w, "  % 10.5f % 10.5f % 10.5f % 10.5f\n",
				m.mat.At(r, 0), m.mat.At(r, 1), m.mat.At(r, 2), m.mat.At(r, 3))
		}
	}
}

// Trace samples the scene over one period.
type Trace struct {
	TimeMS []float64
	Angle  []float64
	Diag   [3][]float64 // model matrix (0,0), (1,1), (2,2)
}

// Sample computes n evenly spaced frames across one rotation period.
func Sample(s frame.Scene, width, height, n int) Trace {
	var tr Trace
	if n <= 0 {
		return tr
	}
	step := s.PeriodMS / float64(n)
	for i := 0; i < n; i++ {
		t := float64(i) * step
		fs := s.Compute(t, width, height)
		tr.TimeMS = append(tr.TimeMS, t)
		tr.Angle = append(tr.Angle, fs.Angle)
		for k := 0; k < 3; k++ {
			tr.Diag[k] = append(tr.Diag[k], fs.Model.At(k, k))
		}
	}
	return tr
}

// Plot renders the trace to path; the extension picks the format (.png, .svg, .pdf).
func Plot(tr Trace, path string) error {
	p := plot.New()
	p.Title.Text = "Model transform over one period"
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = "value"

	series := []struct {
		label string
		ys    []float64
		col   color.RGBA
	}{
		{"angle / π", scaled(tr.Angle, 1/math.Pi), color.RGBA{R: 200, A: 255}},
		{"m00", tr.Diag[0], color.RGBA{G: 160, A: 255}},
		{"m11", tr.Diag[1], color.RGBA{B: 200, A: 255}},
		{"m22", tr.Diag[2], color.RGBA{R: 120, G: 120, A: 255}},
	}
	for _, s := range series {
		pts := make(plotter.XYs, len(tr.TimeMS))
		for i := range tr.TimeMS {
			pts[i] = plotter.XY{X: tr.TimeMS[i], Y: s.ys[i]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("inspect: %s line: %w", s.label, err)
		}
		line.Width = vg.Points(1)
		line.Color = s.col
		p.Add(line)
		p.Legend.Add(s.label, line)
	}
	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("inspect: save %s: %w", path, err)
	}
	return nil
}

func scaled(xs []float64, k float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x * k
	}
	return out
}
