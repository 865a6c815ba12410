package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/santaviz/core/factory"
	"github.com/kilianp07/santaviz/core/family"
	"github.com/kilianp07/santaviz/core/model"
	"github.com/kilianp07/santaviz/core/occupancy"
	"github.com/kilianp07/santaviz/core/score"
)

type recordSink struct {
	count  int
	closed bool
	err    error
}

func (r *recordSink) RecordSummary(Summary) error {
	r.count++
	return r.err
}

func (r *recordSink) Close() error {
	r.closed = true
	return nil
}

// TestMultiSink ensures summaries reach all sinks even when one fails.
func TestMultiSink(t *testing.T) {
	s1 := &recordSink{err: errors.New("down")}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2, NopSink{})
	err := m.RecordSummary(Summary{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "down")
	assert.Equal(t, 1, s1.count)
	assert.Equal(t, 1, s2.count)

	require.NoError(t, m.Close())
	assert.True(t, s1.closed)
	assert.True(t, s2.closed)
}

func TestNewSummarySink(t *testing.T) {
	s, err := NewSummarySink(nil)
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, s)

	s, err = NewSummarySink([]factory.ModuleConfig{{Type: "nop"}})
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, s)

	s, err = NewSummarySink([]factory.ModuleConfig{{Type: "nop"}, {Type: "nop"}})
	require.NoError(t, err)
	m, ok := s.(*MultiSink)
	require.True(t, ok, "expected MultiSink, got %T", s)
	assert.Len(t, m.Sinks, 2)

	_, err = NewSummarySink([]factory.ModuleConfig{{Type: "nop"}, {Type: "missing"}})
	assert.Error(t, err)
	assert.Contains(t, SinkTypes(), "nop")
}

func TestNewSummary(t *testing.T) {
	fams := family.Table{
		{Size: 4, Preferences: [model.NumChoices]int{5, 9, 12, 20, 31, 44, 60, 71, 88, 99}},
		{Size: 3, Preferences: [model.NumChoices]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}
	a := model.Assignment{5, 50}
	tbl, err := occupancy.Aggregate(a, fams)
	require.NoError(t, err)
	res := score.Evaluate(a, fams, tbl)
	now := time.Date(2019, 12, 1, 0, 0, 0, 0, time.UTC)

	s := NewSummary("run", "results.csv", 2, a, tbl, res, now)
	assert.Equal(t, 2, s.Families)
	assert.Equal(t, 7, s.People)
	assert.Equal(t, 4, s.Choices[0])
	assert.Equal(t, 3, s.Choices[model.Unranked])
	assert.Equal(t, 4, s.DayTotals[4])
	assert.Equal(t, 3, s.DayTotals[49])
	assert.Equal(t, a.Hash(), s.Hash)
	assert.Equal(t, res, s.Score)
	assert.Same(t, tbl, s.Tables)
}
