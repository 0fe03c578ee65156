// Package export writes a year view to standalone documents.
package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fchimpan/gh-kusa-graph/internal/calendar"
	"github.com/fchimpan/gh-kusa-graph/internal/graph"
	"github.com/fchimpan/gh-kusa-graph/internal/mapping"
)

// Cell is one heatmap point: week column, weekday row and intensity level.
type Cell struct {
	Column  int
	Weekday int
	Level   mapping.Level
	Count   int
	Label   string
}

// Cells lays the year out GitHub style: one column per week (starting on the
// Sunday on or before January 1st), one row per weekday.
func Cells(v *graph.YearView) ([]Cell, error) {
	lead, err := calendar.FirstWeekday(v.Year(), 0)
	if err != nil {
		return nil, err
	}

	var out []Cell
	for m := 0; m < 12; m++ {
		for _, d := range v.Grid(m).Days() {
			idx, err := calendar.DayOfYearIndex(v.Year(), m, d)
			if err != nil {
				return nil, err
			}
			n, err := v.Count(m, d)
			if err != nil {
				return nil, err
			}
			pos := idx + int(lead)
			out = append(out, Cell{
				Column:  pos / 7,
				Weekday: pos % 7,
				Level:   mapping.LevelFromCount(n),
				Count:   n,
				Label:   fmt.Sprintf("%s %d", calendar.MonthName(m), d),
			})
		}
	}
	return out, nil
}

// WriteHTML renders v as an interactive ECharts heatmap page.
func WriteHTML(w io.Writer, v *graph.YearView, title string) error {
	cells, err := Cells(v)
	if err != nil {
		return err
	}

	cols := 0
	data := make([]opts.HeatMapData, 0, len(cells))
	for _, c := range cells {
		cols = max(cols, c.Column+1)
		data = append(data, opts.HeatMapData{
			Name:  c.Label,
			Value: [3]interface{}{c.Column, c.Weekday, int(c.Level)},
		})
	}

	xAxis := make([]string, cols)
	for i := range xAxis {
		xAxis[i] = fmt.Sprintf("W%d", i+1)
	}
	weekdays := make([]string, len(calendar.WeekdayNames))
	copy(weekdays, calendar.WeekdayNames[:])

	palette := make([]string, len(mapping.Palette))
	for i, c := range mapping.Palette {
		palette[i] = string(c)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1200px",
			Height:    "320px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d contributions in %d", v.Total(), v.Year()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			SplitArea: &opts.SplitArea{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: weekdays,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: 0,
			Max: float32(mapping.MaxLevel),
			InRange: &opts.VisualMapInRange{
				Color: palette,
			},
		}),
	)
	hm.SetXAxis(xAxis).AddSeries("contributions", data)

	if err := hm.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
