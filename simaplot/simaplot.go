//Package simaplot draws response time series and cycle distributions to
//image files (the format is taken from the file extension: png, pdf, svg,
//eps or tif).
package simaplot

import (
	"fmt"

	sima "github.com/evindal/gosima"
	"github.com/evindal/gosima/rainflow"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// TimeSeries plots the given series as lines against their time vectors,
// labeled by series name, and saves the plot to file.
func TimeSeries(file, title string, series ...*sima.TimeSeries) error {
	if len(series) == 0 {
		return fmt.Errorf("simaplot: no series to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	args := make([]interface{}, 0, 2*len(series))
	for _, ts := range series {
		if ts.Len() == 0 {
			return fmt.Errorf("simaplot: series %s is empty", ts.Name)
		}
		pts := make(plotter.XYs, ts.Len())
		for i := range pts {
			pts[i].X = ts.T[i]
			pts[i].Y = ts.X[i]
		}
		args = append(args, ts.Name, pts)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(25*vg.Centimeter, 10*vg.Centimeter, file)
}

// CycleDistribution plots a rainflow cycle distribution as a bar chart of
// cycle count per range bin and saves it to file. Rebin the raw cycles
// first (rainflow.Rebin) so the bars land on equidistant ranges.
func CycleDistribution(file, title string, cycles []rainflow.Cycle) error {
	if len(cycles) == 0 {
		return fmt.Errorf("simaplot: no cycles to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Cycle range"
	p.Y.Label.Text = "Count"
	counts := make(plotter.Values, len(cycles))
	labels := make([]string, len(cycles))
	for i, c := range cycles {
		counts[i] = c.Count
		labels[i] = fmt.Sprintf("%.3g", c.Range)
	}
	bars, err := plotter.NewBarChart(counts, vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(2)
	p.Add(bars)
	p.NominalX(labels...)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}

// Maxima plots a sample of maxima against its empirical cumulative
// distribution function and saves it to file. maxima must be sorted
// ascending, as returned by simastat.FindMaxima, and cdf must have the
// same length, as returned by simastat.EmpiricalCDF.
func Maxima(file, title string, maxima, cdf []float64) error {
	if len(maxima) == 0 || len(maxima) != len(cdf) {
		return fmt.Errorf("simaplot: %d maxima against %d plotting positions", len(maxima), len(cdf))
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Maximum"
	p.Y.Label.Text = "Cumulative probability"
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(maxima))
	for i := range pts {
		pts[i].X = maxima[i]
		pts[i].Y = cdf[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(s)
	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, file)
}
