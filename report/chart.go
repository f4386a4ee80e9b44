package report

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
)

// SaveImportanceChart renders the importance ranking as a bar chart PNG.
// Bars keep the ranking's descending order.
func SaveImportanceChart(ranking []FeatureImportance, title, path string) error {
	if len(ranking) == 0 {
		return errors.WithStack(errors.ErrEmptyData)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "importance"

	values := make(plotter.Values, len(ranking))
	names := make([]string, len(ranking))
	for i, fi := range ranking {
		values[i] = fi.Score
		names[i] = fi.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return errors.Wrap(err, "build bar chart")
	}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = -0.8
	p.X.Tick.Label.YAlign = -0.4

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "save importance chart")
	}
	return nil
}
