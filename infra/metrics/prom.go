package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/santaviz/core/metrics"
)

// PromSink exposes a summary as Prometheus gauges and writes them in the
// text exposition format, suitable for the node_exporter textfile collector.
type PromSink struct {
	path   string
	reg    prometheus.Gatherer
	day    *prometheus.GaugeVec
	choice *prometheus.GaugeVec
	score  *prometheus.GaugeVec
	info   *prometheus.GaugeVec
}

// NewPromSink registers the gauges on a private registry and writes them to
// path on every summary. An empty path only keeps the gauges in memory.
func NewPromSink(path string) (*PromSink, error) {
	reg := prometheus.NewRegistry()
	return NewPromSinkWithRegistry(path, reg, reg)
}

// NewPromSinkWithRegistry registers the gauges on reg and gathers from g when
// writing the textfile.
func NewPromSinkWithRegistry(path string, reg prometheus.Registerer, g prometheus.Gatherer) (*PromSink, error) {
	day := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "santaviz_day_occupancy",
		Help: "People visiting on a day, split by choice rank",
	}, []string{"day", "rank"})
	choice := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "santaviz_choice_occupancy",
		Help: "People visiting at a choice rank across all days",
	}, []string{"rank"})
	score := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "santaviz_score",
		Help: "Cost components of the assignment",
	}, []string{"component"})
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "santaviz_run_info",
		Help: "Identity of the visualised record",
	}, []string{"run_id", "source", "index", "hash"})

	var err error
	if day, err = register(reg, day); err != nil {
		return nil, err
	}
	if choice, err = register(reg, choice); err != nil {
		return nil, err
	}
	if score, err = register(reg, score); err != nil {
		return nil, err
	}
	if info, err = register(reg, info); err != nil {
		return nil, err
	}
	return &PromSink{path: path, reg: g, day: day, choice: choice, score: score, info: info}, nil
}

func register(reg prometheus.Registerer, g *prometheus.GaugeVec) (*prometheus.GaugeVec, error) {
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.GaugeVec), nil
		}
		return nil, err
	}
	return g, nil
}

// RecordSummary sets every gauge from the summary and writes the textfile.
func (s *PromSink) RecordSummary(sum coremetrics.Summary) error {
	if sum.Tables != nil {
		for d, row := range sum.Tables.Days {
			day := strconv.Itoa(d + 1)
			for r, n := range row {
				s.day.WithLabelValues(day, strconv.Itoa(r)).Set(float64(n))
			}
		}
	}
	for r, n := range sum.Choices {
		s.choice.WithLabelValues(strconv.Itoa(r)).Set(float64(n))
	}
	s.score.WithLabelValues("preference").Set(float64(sum.Score.Preference))
	s.score.WithLabelValues("accounting").Set(sum.Score.Accounting)
	s.score.WithLabelValues("total").Set(sum.Score.Total)
	s.score.WithLabelValues("violations").Set(float64(len(sum.Score.Violations)))
	s.info.Reset()
	s.info.WithLabelValues(sum.RunID, sum.Source, strconv.Itoa(sum.Index), strconv.FormatUint(uint64(sum.Hash), 16)).Set(1)

	if s.path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(s.path, s.reg)
}

var _ coremetrics.SummarySink = (*PromSink)(nil)
