// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package visualization presents scaling results as tables and charts.
package visualization

import (
	"image/color"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/intelsdi-x/scaling/pkg/conf"
	"github.com/intelsdi-x/scaling/pkg/measurement"
	"github.com/intelsdi-x/scaling/pkg/utils/fs"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	// StrongPlotFlag is the path of strong scaling chart.
	StrongPlotFlag = conf.NewStringFlag("strong_plot", "Output file for strong scaling chart", "plots/strong_scaling.png")
	// WeakPlotFlag is the path of weak scaling chart.
	WeakPlotFlag = conf.NewStringFlag("weak_plot", "Output file for weak scaling chart", "plots/weak_scaling.png")
	// ComparisonPlotFlag is the path of both charts drawn side by side.
	ComparisonPlotFlag = conf.NewStringFlag("comparison_plot", "Output file for strong and weak scaling charts side by side", "plots/comparison.png")
)

const (
	// BandFraction is the relative width of the shaded band drawn around every series.
	// It marks a fixed visual tolerance and is not derived from repeated measurements.
	BandFraction = 0.05
	// headroom is the factor between the highest speedup and the top of Y axis.
	headroom = 1.1

	chartWidth  = 6.4 * vg.Inch
	chartHeight = 4.8 * vg.Inch
	// comparisonTileWidth is the width of a single chart in side by side comparison.
	comparisonTileWidth = 6 * vg.Inch
	comparisonHeight    = 5 * vg.Inch
)

var kindColors = map[measurement.Kind]color.NRGBA{
	measurement.OpenMP: {B: 255, A: 255},
	measurement.MPI:    {G: 128, A: 255},
}

// bandAlpha is the opacity of the shaded band.
const bandAlpha = 51

// ErrNothingToPlot is returned when dataset does not contain any parallel series.
var ErrNothingToPlot = errors.New("no parallel measurements to plot")

type series struct {
	kind   measurement.Kind
	points plotter.XYs
}

// parallelSeries converts every parallel kind of the dataset with metric.
// Sequential records only serve as data and are not drawn.
func parallelSeries(dataset measurement.Dataset, metric func([]measurement.Record) ([]float64, error)) ([]series, error) {
	var result []series
	for _, kind := range dataset.Kinds() {
		if kind == measurement.Sequential {
			continue
		}
		records := dataset.Series(kind)
		values, err := metric(records)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot compute %s series of %s", kind.Label(), dataset.Name)
		}

		points := make(plotter.XYs, len(records))
		for i, record := range records {
			points[i].X = float64(record.Parallelism)
			points[i].Y = values[i]
		}
		result = append(result, series{kind: kind, points: points})
	}

	if len(result) == 0 {
		return nil, errors.Wrapf(ErrNothingToPlot, "dataset %s", dataset.Name)
	}
	return result, nil
}

// rawTimes keeps recorded times untransformed.
func rawTimes(records []measurement.Record) ([]float64, error) {
	times := make([]float64, len(records))
	for i, record := range records {
		times[i] = record.Time
	}
	return times, nil
}

// StrongScalingChart draws speedup of every parallel kind against ideal linear speedup.
// Y axis ends 10% above the highest observed speedup.
func StrongScalingChart(dataset measurement.Dataset) (*plot.Plot, error) {
	all, err := parallelSeries(dataset, measurement.Speedup)
	if err != nil {
		return nil, err
	}

	degrees := parallelismDegrees(all)
	p := newChart("Strong Scaling (Amdahl's law)", "# cores", "speedup", degrees)
	top, err := drawSeries(p, all)
	if err != nil {
		return nil, err
	}

	maxDegree := degrees[len(degrees)-1]
	ideal, err := plotter.NewLine(plotter.XYs{{X: 1, Y: 1}, {X: maxDegree, Y: maxDegree}})
	if err != nil {
		return nil, errors.Wrap(err, "cannot draw ideal speedup")
	}
	ideal.Color = color.Black
	ideal.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(ideal)
	p.Legend.Add("Ideal", ideal)

	p.Y.Min = 0
	p.Y.Max = headroom * top
	return p, nil
}

// WeakScalingChart draws recorded time of every parallel kind.
func WeakScalingChart(dataset measurement.Dataset) (*plot.Plot, error) {
	all, err := parallelSeries(dataset, rawTimes)
	if err != nil {
		return nil, err
	}

	p := newChart("Weak Scaling (Gustafson's law)", "# cores", "time [s]", parallelismDegrees(all))
	if _, err := drawSeries(p, all); err != nil {
		return nil, err
	}
	return p, nil
}

func newChart(title, xLabel, yLabel string, degrees []float64) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	ticks := make([]plot.Tick, len(degrees))
	for i, degree := range degrees {
		ticks[i] = plot.Tick{Value: degree, Label: strconv.Itoa(int(degree))}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	return p
}

// drawSeries adds every series with its shaded band to the chart.
// It returns the highest value of all series.
func drawSeries(p *plot.Plot, all []series) (float64, error) {
	var values []float64
	for _, s := range all {
		lineColor := kindColors[s.kind]
		fillColor := lineColor
		fillColor.A = bandAlpha

		band, err := toleranceBand(s.points)
		if err != nil {
			return 0, errors.Wrapf(err, "cannot draw %s band", s.kind.Label())
		}
		band.Color = fillColor
		p.Add(band)

		line, err := plotter.NewLine(s.points)
		if err != nil {
			return 0, errors.Wrapf(err, "cannot draw %s series", s.kind.Label())
		}
		line.Color = lineColor
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.kind.Label(), line)

		for _, point := range s.points {
			values = append(values, point.Y)
		}
	}
	return floats.Max(values), nil
}

// toleranceBand returns polygon spanning BandFraction below and above the series.
func toleranceBand(points plotter.XYs) (*plotter.Polygon, error) {
	ys := make([]float64, len(points))
	for i := range points {
		ys[i] = points[i].Y
	}
	lower := append([]float64{}, ys...)
	upper := append([]float64{}, ys...)
	floats.Scale(1-BandFraction, lower)
	floats.Scale(1+BandFraction, upper)

	outline := make(plotter.XYs, 0, 2*len(points))
	for i := range points {
		outline = append(outline, plotter.XY{X: points[i].X, Y: lower[i]})
	}
	for i := len(points) - 1; i >= 0; i-- {
		outline = append(outline, plotter.XY{X: points[i].X, Y: upper[i]})
	}

	band, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	band.LineStyle.Width = 0
	return band, nil
}

// parallelismDegrees returns sorted distinct X values of all series.
func parallelismDegrees(all []series) []float64 {
	seen := map[float64]bool{}
	var degrees []float64
	for _, s := range all {
		for _, point := range s.points {
			if !seen[point.X] {
				seen[point.X] = true
				degrees = append(degrees, point.X)
			}
		}
	}
	sort.Float64s(degrees)
	return degrees
}

// SaveChart writes chart to path. Image format follows the file extension.
func SaveChart(p *plot.Plot, path string) error {
	if err := fs.EnsureParentDir(path); err != nil {
		return err
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return errors.Wrapf(err, "cannot save chart %q", path)
	}
	return nil
}

// SaveComparison writes charts side by side into single PNG file at path.
func SaveComparison(path string, charts ...*plot.Plot) error {
	if len(charts) == 0 {
		return errors.Wrapf(ErrNothingToPlot, "comparison %q", path)
	}

	img := vgimg.New(vg.Length(len(charts))*comparisonTileWidth, comparisonHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(charts),
		PadX:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}
	canvases := plot.Align([][]*plot.Plot{charts}, tiles, dc)
	for i, chart := range charts {
		chart.Draw(canvases[0][i])
	}

	if err := fs.EnsureParentDir(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", path)
	}
	return errors.Wrapf(writePNG(file, img), "cannot save comparison chart %q", path)
}

// writePNG encodes img into w and closes it. Data may be lost on close, so its error is returned too.
func writePNG(w io.WriteCloser, img *vgimg.Canvas) error {
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return errors.Wrap(err, "cannot write")
	}
	return errors.Wrap(w.Close(), "cannot close")
}
