package backend

import "git.sr.ht/~whereswaldon/linegraph/chart"

var (
	demoDays = []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	demoNet  = []float64{0, 43, 64, 57, 86, 43, 199, 34, 8000}
	demoGain = []float64{0, 2, 4, 8, 16, 32, 64, 128, 256}
)

var demoDaily = []float64{
	0, 43, 64, 57, 86, 43, 86, 79, 45, 84, 22,
	48, 59, 59, 59, 49, 48, 25, 48, 80, 35,
	76, 54, 24, 45, 87, 45, 76, 85, 23, 43,
}

// DemoSeries returns the sample dataset shown when no trace is given.
func DemoSeries() []chart.Series {
	xs := make([]float64, len(demoDaily))
	for i := range xs {
		xs[i] = float64(i)
	}
	out := make([]chart.Series, 0, 3)
	for i, in := range []struct {
		xs, ys []float64
		label  string
	}{
		{demoDays, demoNet, "Net Sales"},
		{demoDays, demoGain, "Profit"},
		{xs, demoDaily, "Sales"},
	} {
		s, err := chart.NewSeries(in.xs, in.ys, in.label)
		if err != nil {
			panic(err)
		}
		s.ColorIndex = i
		out = append(out, s)
	}
	return out
}
