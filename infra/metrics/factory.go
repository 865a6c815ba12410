package metrics

import (
	"fmt"

	"github.com/kilianp07/santaviz/core/factory"
	coremetrics "github.com/kilianp07/santaviz/core/metrics"
	"github.com/kilianp07/santaviz/infra/mqtt"
)

// init registers the infrastructure summary sinks.
func init() {
	_ = coremetrics.RegisterSummarySink("prometheus", func(conf map[string]any) (coremetrics.SummarySink, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Path == "" {
			return nil, fmt.Errorf("prometheus sink requires path")
		}
		return NewPromSink(c.Path)
	})

	_ = coremetrics.RegisterSummarySink("influx", func(conf map[string]any) (coremetrics.SummarySink, error) {
		var c InfluxConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.URL == "" || c.Bucket == "" {
			return nil, fmt.Errorf("influx sink requires url and bucket")
		}
		return NewInfluxSinkWithFallback(c), nil
	})

	_ = coremetrics.RegisterSummarySink("mqtt", func(conf map[string]any) (coremetrics.SummarySink, error) {
		var c mqtt.Config
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return mqtt.NewSummaryPublisherWithFallback(c)
	})
}
