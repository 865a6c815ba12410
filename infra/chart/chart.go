package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kilianp07/santaviz/core/occupancy"
)

// Output file names.
const (
	OccupancyPDF  = "occupancy.pdf"
	ChoicesPDF    = "choices.pdf"
	OccupancyHTML = "occupancy.html"
	ChoicesHTML   = "choices.html"
)

// Renderer draws the occupancy tables into files inside dir and returns the
// paths written.
type Renderer interface {
	Render(t *occupancy.Tables, dir string) ([]string, error)
}

// Multi renders with each renderer in turn and stops at the first error.
type Multi []Renderer

// Render implements Renderer.
func (m Multi) Render(t *occupancy.Tables, dir string) ([]string, error) {
	var out []string
	for _, r := range m {
		paths, err := r.Render(t, dir)
		out = append(out, paths...)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// EnsureDir creates dir and its parents. An existing directory is accepted.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

// writeFile creates path and hands it to fn. The file is closed on every path
// and a close error is reported when fn succeeded.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := fn(f); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
