package app

import (
	"context"
	"fmt"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"ndbc-data/internal/stdmet"
)

// PlotOptions configure the plot command.
type PlotOptions struct {
	Station string
	Field   string
	PNGPath string
}

// Plot fetches one station's feed and renders the chosen field as a PNG
// time-series chart. Rows where the field has no reading are left out.
func (a *App) Plot(ctx context.Context, opts PlotOptions) error {
	if !knownField(opts.Field) {
		return fmt.Errorf("unknown field %q; one of %v", opts.Field, stdmet.FieldNames)
	}

	client := a.newClient()
	text, err := client.FetchFeed(ctx, opts.Station)
	if err != nil {
		return err
	}

	table := stdmet.Parse(text)
	if table.NumRows() == 0 {
		return errNoDataRows
	}

	col := table.Column(opts.Field)
	var x []time.Time
	var y []float64
	for row := 0; row < table.NumRows(); row++ {
		if v, ok := col.Value(row); ok {
			x = append(x, time.UnixMilli(table.Times[row]).UTC())
			y = append(y, v)
		}
	}
	if len(x) < 2 {
		return fmt.Errorf("not enough %s readings to plot", opts.Field)
	}

	graph := chart.Chart{
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: opts.Field,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    fmt.Sprintf("%s %s", opts.Station, opts.Field),
				XValues: x,
				YValues: y,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(opts.PNGPath)
	if err != nil {
		return err
	}
	defer file.Close()

	a.Logger.Info().
		Str("station", opts.Station).
		Str("field", opts.Field).
		Int("points", len(x)).
		Str("file", opts.PNGPath).
		Msg("rendering chart")

	return graph.Render(chart.PNG, file)
}

func knownField(name string) bool {
	for _, f := range stdmet.FieldNames {
		if f == name {
			return true
		}
	}
	return false
}
