package metrics

import (
	"time"

	"github.com/kilianp07/santaviz/core/model"
	"github.com/kilianp07/santaviz/core/occupancy"
	"github.com/kilianp07/santaviz/core/score"
)

// Summary describes one visualised assignment.
type Summary struct {
	RunID     string              `json:"run_id"`
	Source    string              `json:"source"`
	Index     int                 `json:"index"`
	Hash      uint32              `json:"hash"`
	Families  int                 `json:"families"`
	People    int                 `json:"people"`
	Choices   [model.NumRanks]int `json:"choices"`
	DayTotals [model.NumDays]int  `json:"day_totals"`
	Score     score.Result        `json:"score"`
	Outputs   []string            `json:"outputs,omitempty"`
	Time      time.Time           `json:"time"`
	Tables    *occupancy.Tables   `json:"-"`
}

// NewSummary fills the derived fields of a summary from the tables.
func NewSummary(runID, source string, index int, a model.Assignment, t *occupancy.Tables, res score.Result, now time.Time) Summary {
	return Summary{
		RunID:     runID,
		Source:    source,
		Index:     index,
		Hash:      a.Hash(),
		Families:  len(a),
		People:    t.Total(),
		Choices:   t.Choices,
		DayTotals: t.DayTotals(),
		Score:     res,
		Time:      now,
		Tables:    t,
	}
}

// SummarySink publishes run summaries.
type SummarySink interface {
	RecordSummary(s Summary) error
}

// NopSink implements SummarySink with a no-op.
type NopSink struct{}

func (NopSink) RecordSummary(Summary) error { return nil }
