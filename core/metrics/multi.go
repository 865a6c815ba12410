package metrics

import (
	"errors"
	"io"
)

// MultiSink fans a summary out to several sinks.
type MultiSink struct {
	Sinks []SummarySink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...SummarySink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSummary forwards the summary to every sink and joins their errors.
func (m *MultiSink) RecordSummary(s Summary) error {
	var errs []error
	for _, sink := range m.Sinks {
		if err := sink.RecordSummary(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink implementing io.Closer.
func (m *MultiSink) Close() error {
	var errs []error
	for _, sink := range m.Sinks {
		if c, ok := sink.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
