package plugins

import "github.com/kilianp07/santaviz/infra/chart"

func init() {
	RegisterRenderer("pdf", func(name string, _ map[string]any) (chart.Renderer, error) {
		return chart.NewPDFRenderer(), nil
	})
	RegisterRenderer("html", func(name string, _ map[string]any) (chart.Renderer, error) {
		return chart.HTMLRenderer{}, nil
	})
}
