package metrics

import "github.com/kilianp07/santaviz/core/factory"

var sinkRegistry = factory.NewRegistry[SummarySink]()

func init() {
	_ = RegisterSummarySink("nop", func(map[string]any) (SummarySink, error) {
		return NopSink{}, nil
	})
}

// RegisterSummarySink adds a sink factory identified by name.
func RegisterSummarySink(name string, f factory.Factory[SummarySink]) error {
	return sinkRegistry.Register(name, f)
}

// SinkTypes lists the registered sink types.
func SinkTypes() []string { return sinkRegistry.Types() }

// NewSummarySink creates a SummarySink from the provided configuration.
func NewSummarySink(cfgs []factory.ModuleConfig) (SummarySink, error) {
	if len(cfgs) == 0 {
		return NopSink{}, nil
	}
	if len(cfgs) == 1 {
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]SummarySink, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			_ = NewMultiSink(sinks...).Close()
			return nil, err
		}
		sinks = append(sinks, s)
	}
	return NewMultiSink(sinks...), nil
}
