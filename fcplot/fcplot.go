// Package fcplot renders distribution plots for the FC analysis
// tools.
package fcplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Hist writes a histogram of the values to a PNG file.
func Hist(values []float64, bins int, title, xlabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(4*vg.Inch, 3*vg.Inch, path)
}
