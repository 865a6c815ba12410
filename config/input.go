package config

import "fmt"

// InputConfig locates the assignment record and the family table.
type InputConfig struct {
	// Path is the results file, one candidate assignment per line.
	Path string `json:"path"`
	// Index selects the zero-based line of Path.
	Index int `json:"index"`
	// Families is the CSV file with n_people and choice_0..choice_9.
	Families string `json:"families"`
}

// SetDefaults applies sane defaults.
func (c *InputConfig) SetDefaults() {
	if c.Families == "" {
		c.Families = "family_data.csv"
	}
}

// Validate checks mandatory fields.
func (c InputConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Index < 0 {
		return fmt.Errorf("index must not be negative, got %d", c.Index)
	}
	return nil
}

// OutputConfig controls where and what is written.
type OutputConfig struct {
	// Dir receives every generated file. It is created when missing.
	Dir string `json:"dir"`
	// HTML also renders interactive charts.
	HTML bool `json:"html"`
	// SkipExport disables summary.json and occupancy.csv.
	SkipExport bool `json:"skip_export"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "fig"
	}
}

// Validate checks mandatory fields.
func (c OutputConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("output dir is required")
	}
	return nil
}
