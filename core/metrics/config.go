package metrics

import "github.com/kilianp07/santaviz/core/factory"

// Config defines settings for summary sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}
