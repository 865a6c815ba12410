package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/santaviz/app/plugins"
	"github.com/kilianp07/santaviz/config"
	"github.com/kilianp07/santaviz/core/family"
	coremetrics "github.com/kilianp07/santaviz/core/metrics"
	"github.com/kilianp07/santaviz/core/occupancy"
	"github.com/kilianp07/santaviz/core/score"
	"github.com/kilianp07/santaviz/core/solution"
	"github.com/kilianp07/santaviz/infra/chart"
	"github.com/kilianp07/santaviz/infra/logger"
	_ "github.com/kilianp07/santaviz/infra/metrics" // registers prometheus, influx and mqtt sinks
	"github.com/kilianp07/santaviz/pkg/export"
)

// Runner visualises one assignment record.
type Runner struct {
	cfg      config.Config
	renderer chart.Renderer
	sink     coremetrics.SummarySink
	log      logger.Logger
	now      func() time.Time
}

// New creates a Runner from a validated configuration.
func New(cfg *config.Config) (*Runner, error) {
	names := []string{"pdf"}
	if cfg.Output.HTML {
		names = append(names, "html")
	}
	r, err := plugins.NewRenderer(names...)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	sink, err := coremetrics.NewSummarySink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("summary sink: %w", err)
	}
	return &Runner{
		cfg:      *cfg,
		renderer: r,
		sink:     sink,
		log:      logger.New("runner"),
		now:      time.Now,
	}, nil
}

// Run selects the record, aggregates it, renders the charts and publishes
// the summary. Sink failures are logged only.
func (r *Runner) Run() (coremetrics.Summary, error) {
	in := r.cfg.Input
	runID := uuid.NewString()

	a, err := solution.SelectFile(in.Path, in.Index)
	if err != nil {
		return coremetrics.Summary{}, fmt.Errorf("select record: %w", err)
	}
	fams, err := family.LoadFile(in.Families)
	if err != nil {
		return coremetrics.Summary{}, fmt.Errorf("load families: %w", err)
	}
	r.log.Debugw("record selected", map[string]any{
		"run_id":   runID,
		"source":   in.Path,
		"index":    in.Index,
		"families": fams.Len(),
		"hash":     a.Hash(),
	})

	t, err := occupancy.Aggregate(a, fams)
	if err != nil {
		return coremetrics.Summary{}, fmt.Errorf("aggregate: %w", err)
	}
	if err := t.Check(); err != nil {
		return coremetrics.Summary{}, err
	}
	res := score.Evaluate(a, fams, t)
	if !res.Feasible {
		r.log.Warnf("assignment violates occupancy bounds on %d days", len(res.Violations))
	}

	if err := chart.EnsureDir(r.cfg.Output.Dir); err != nil {
		return coremetrics.Summary{}, fmt.Errorf("output dir: %w", err)
	}
	outputs, err := r.renderer.Render(t, r.cfg.Output.Dir)
	if err != nil {
		return coremetrics.Summary{}, fmt.Errorf("render: %w", err)
	}

	sum := coremetrics.NewSummary(runID, in.Path, in.Index, a, t, res, r.now().UTC())
	sum.Outputs = outputs
	if !r.cfg.Output.SkipExport {
		if err := r.export(&sum); err != nil {
			return sum, err
		}
	}

	if err := r.sink.RecordSummary(sum); err != nil {
		r.log.Errorf("record summary: %v", err)
	}
	r.log.Infof("run %s: %d people, score %.2f, wrote %d files to %s",
		runID, sum.People, res.Total, len(sum.Outputs), r.cfg.Output.Dir)
	return sum, nil
}

func (r *Runner) export(sum *coremetrics.Summary) error {
	dir := r.cfg.Output.Dir
	csvPath := filepath.Join(dir, export.OccupancyCSV)
	jsonPath := filepath.Join(dir, export.SummaryJSON)
	sum.Outputs = append(sum.Outputs, csvPath, jsonPath)

	if err := writeFile(csvPath, func(w io.Writer) error {
		return export.WriteCSV(w, sum.Tables)
	}); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	if err := writeFile(jsonPath, func(w io.Writer) error {
		return export.WriteJSON(w, *sum)
	}); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}

// Close releases the summary sinks.
func (r *Runner) Close() error {
	if c, ok := r.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}
