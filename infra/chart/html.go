package chart

import (
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kilianp07/santaviz/core/model"
	"github.com/kilianp07/santaviz/core/occupancy"
)

// HTMLRenderer writes interactive versions of both charts.
type HTMLRenderer struct{}

// Render implements Renderer.
func (HTMLRenderer) Render(t *occupancy.Tables, dir string) ([]string, error) {
	var out []string
	path := filepath.Join(dir, OccupancyHTML)
	if err := writeFile(path, OccupancyBar(t).Render); err != nil {
		return out, err
	}
	out = append(out, path)
	path = filepath.Join(dir, ChoicesHTML)
	if err := writeFile(path, ChoicesBar(t).Render); err != nil {
		return out, err
	}
	return append(out, path), nil
}

// OccupancyBar builds a stacked bar chart of people per day and rank.
func OccupancyBar(t *occupancy.Tables) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Occupancy"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Day"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Occupancy"}),
	)
	days := make([]string, model.NumDays)
	for d := range days {
		days[d] = strconv.Itoa(d + 1)
	}
	bar.SetXAxis(days)
	for r := 0; r < model.NumRanks; r++ {
		data := make([]opts.BarData, model.NumDays)
		for d := range data {
			data[d] = opts.BarData{Value: t.Days[d][r]}
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithBarChartOpts(opts.BarChart{Stack: "rank", BarCategoryGap: "0%"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: rankHex(r)}),
		}
		if r == 0 {
			seriesOpts = append(seriesOpts,
				charts.WithMarkLineNameYAxisItemOpts(
					opts.MarkLineNameYAxisItem{Name: "min", YAxis: model.MinOccupancy},
					opts.MarkLineNameYAxisItem{Name: "max", YAxis: model.MaxOccupancy},
				),
				charts.WithMarkLineStyleOpts(opts.MarkLineStyle{Symbol: []string{"none"}}),
			)
		}
		bar.AddSeries(rankLabel(r), data, seriesOpts...)
	}
	return bar
}

// ChoicesBar builds a bar chart of people per choice rank on a log axis.
func ChoicesBar(t *occupancy.Tables) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Choices"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Choice"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of people", Type: "log"}),
	)
	ranks := make([]string, model.NumRanks)
	data := make([]opts.BarData, model.NumRanks)
	for r, n := range t.Choices {
		ranks[r] = strconv.Itoa(r)
		data[r] = opts.BarData{Value: n}
	}
	bar.SetXAxis(ranks).AddSeries("people", data)
	return bar
}
