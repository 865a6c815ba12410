package chart

import (
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kilianp07/santaviz/core/model"
	"github.com/kilianp07/santaviz/core/occupancy"
)

// logFloor is the lower bound of the log axis of the choices chart. Empty
// ranks are drawn with zero height at this level.
const logFloor = 0.5

var barColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// PDFRenderer writes occupancy.pdf and choices.pdf.
type PDFRenderer struct {
	Width  vg.Length
	Height vg.Length
}

// NewPDFRenderer returns a renderer using a 6x4 inch page.
func NewPDFRenderer() PDFRenderer {
	return PDFRenderer{Width: 6 * vg.Inch, Height: 4 * vg.Inch}
}

// Render implements Renderer.
func (r PDFRenderer) Render(t *occupancy.Tables, dir string) ([]string, error) {
	var out []string
	occ, err := OccupancyPlot(t)
	if err != nil {
		return out, err
	}
	path := filepath.Join(dir, OccupancyPDF)
	if err := r.save(occ, path); err != nil {
		return out, err
	}
	out = append(out, path)

	ch, err := ChoicesPlot(t)
	if err != nil {
		return out, err
	}
	path = filepath.Join(dir, ChoicesPDF)
	if err := r.save(ch, path); err != nil {
		return out, err
	}
	return append(out, path), nil
}

func (r PDFRenderer) save(p *plot.Plot, path string) error {
	wt, err := p.WriterTo(r.Width, r.Height, "pdf")
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		_, err := wt.WriteTo(w)
		return err
	})
}

// stackLayers returns one closed step outline per rank. Layer r spans from the
// cumulative count of ranks below r to that count plus rank r, over bins
// [day, day+1).
func stackLayers(t *occupancy.Tables) [model.NumRanks]plotter.XYs {
	var bottom [model.NumDays]float64
	var layers [model.NumRanks]plotter.XYs
	for r := 0; r < model.NumRanks; r++ {
		pts := make(plotter.XYs, 0, 4*model.NumDays)
		var top [model.NumDays]float64
		for d := 0; d < model.NumDays; d++ {
			top[d] = bottom[d] + float64(t.Days[d][r])
			x := float64(d + 1)
			pts = append(pts, plotter.XY{X: x, Y: top[d]}, plotter.XY{X: x + 1, Y: top[d]})
		}
		for d := model.NumDays - 1; d >= 0; d-- {
			x := float64(d + 1)
			pts = append(pts, plotter.XY{X: x + 1, Y: bottom[d]}, plotter.XY{X: x, Y: bottom[d]})
		}
		layers[r] = pts
		bottom = top
	}
	return layers
}

func referenceLine(y float64) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: 1, Y: y}, {X: model.NumDays + 1, Y: y}})
	if err != nil {
		return nil, err
	}
	l.LineStyle = draw.LineStyle{
		Color:  color.Black,
		Width:  vg.Points(0.8),
		Dashes: []vg.Length{vg.Points(4), vg.Points(2)},
	}
	return l, nil
}

// OccupancyPlot builds the stacked histogram of people per day, one layer
// per choice rank, with the occupancy bounds as dashed lines.
func OccupancyPlot(t *occupancy.Tables) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "Day"
	p.Y.Label.Text = "Occupancy"

	for r, pts := range stackLayers(t) {
		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return nil, err
		}
		poly.Color = rankColor(r)
		poly.LineStyle.Width = 0
		p.Add(poly)
	}
	for _, y := range []float64{model.MinOccupancy, model.MaxOccupancy} {
		l, err := referenceLine(y)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}
	p.X.Min = 1
	p.X.Max = model.NumDays + 1
	p.Y.Min = 0
	return p, nil
}

// ChoicesPlot builds the bar chart of people per choice rank on a log axis.
func ChoicesPlot(t *occupancy.Tables) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "Choice"
	p.Y.Label.Text = "Number of people"

	peak := 0
	names := make([]string, model.NumRanks)
	for r, n := range t.Choices {
		names[r] = strconv.Itoa(r)
		if n > peak {
			peak = n
		}
		x := float64(r)
		h := math.Max(float64(n), logFloor)
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: x - 0.4, Y: logFloor}, {X: x + 0.4, Y: logFloor},
			{X: x + 0.4, Y: h}, {X: x - 0.4, Y: h},
		})
		if err != nil {
			return nil, err
		}
		poly.Color = barColor
		poly.LineStyle.Width = 0
		p.Add(poly)
	}
	p.NominalX(names...)
	p.X.Min = -0.5
	p.X.Max = model.NumRanks - 0.5
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Min = logFloor
	p.Y.Max = math.Max(2*float64(peak), 10)
	return p, nil
}
