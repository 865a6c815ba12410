package plugins

import (
	"fmt"
	"sort"

	"github.com/kilianp07/santaviz/infra/chart"
)

// RendererFactory builds a chart renderer from a raw configuration map.
type RendererFactory func(name string, conf map[string]any) (chart.Renderer, error)

// Renderers maps a renderer name to its factory.
var Renderers = map[string]RendererFactory{}

// RegisterRenderer adds or replaces the factory for name.
func RegisterRenderer(name string, f RendererFactory) { Renderers[name] = f }

// RendererNames lists the registered renderers in a stable order.
func RendererNames() []string {
	names := make([]string, 0, len(Renderers))
	for n := range Renderers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewRenderer builds the named renderer, wrapping several into chart.Multi.
func NewRenderer(names ...string) (chart.Renderer, error) {
	var out chart.Multi
	for _, n := range names {
		f, ok := Renderers[n]
		if !ok {
			return nil, fmt.Errorf("unknown renderer %q", n)
		}
		r, err := f(n, nil)
		if err != nil {
			return nil, fmt.Errorf("renderer %s: %w", n, err)
		}
		out = append(out, r)
	}
	if len(out) == 1 {
		return out[0], nil
	}
	return out, nil
}
