package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/santaviz/core/family"
	"github.com/kilianp07/santaviz/core/model"
	"github.com/kilianp07/santaviz/core/occupancy"
)

func TestPreferenceCost(t *testing.T) {
	cases := []struct {
		rank int
		want int64
	}{
		{0, 0}, {1, 50}, {2, 86}, {3, 136}, {4, 236}, {5, 272},
		{6, 372}, {7, 444}, {8, 544}, {9, 1440}, {model.Unranked, 2236},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PreferenceCost(c.rank, 4), "rank %d", c.rank)
	}
}

func TestAccountingPenaltyFlat(t *testing.T) {
	var days [model.NumDays]int
	for i := range days {
		days[i] = model.MinOccupancy
	}
	assert.Zero(t, AccountingPenalty(days))

	for i := range days {
		days[i] = 210
	}
	// Constant occupancy: each day costs (210-125)/400 * sqrt(210).
	want := float64(model.NumDays) * 85.0 / 400 * math.Sqrt(210)
	assert.InDelta(t, want, AccountingPenalty(days), 1e-9)
}

func TestAccountingPenaltyStep(t *testing.T) {
	var days [model.NumDays]int
	for i := range days {
		days[i] = 150
	}
	days[0] = 200
	// Only day 1 differs from its successor.
	want := 99*25.0/400*math.Sqrt(150) + 75.0/400*math.Pow(200, 0.5+1)
	assert.InDelta(t, want, AccountingPenalty(days), 1e-9)
}

func TestViolations(t *testing.T) {
	var days [model.NumDays]int
	for i := range days {
		days[i] = 200
	}
	days[3] = 124
	days[97] = 301
	v := Violations(days)
	assert.Equal(t, []Violation{{Day: 4, People: 124}, {Day: 98, People: 301}}, v)
}

func TestEvaluate(t *testing.T) {
	fams := family.Table{
		{Size: 4, Preferences: [model.NumChoices]int{5, 9, 12, 20, 31, 44, 60, 71, 88, 99}},
		{Size: 2, Preferences: [model.NumChoices]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}
	a := model.Assignment{9, 50}
	tbl, err := occupancy.Aggregate(a, fams)
	require.NoError(t, err)
	res := Evaluate(a, fams, tbl)
	assert.Equal(t, int64(50+500+434*2), res.Preference)
	assert.False(t, res.Feasible)
	assert.Len(t, res.Violations, model.NumDays)
	assert.Zero(t, res.Accounting)
	assert.Equal(t, float64(res.Preference), res.Total)
}

// overloaded puts 1000 families of five on day 1 and leaves the other days
// empty, so the accounting penalty would overflow.
func overloaded(t *testing.T) (model.Assignment, family.Table, *occupancy.Tables) {
	t.Helper()
	fams := make(family.Table, 1000)
	a := make(model.Assignment, len(fams))
	for i := range fams {
		fams[i] = model.Family{ID: i, Size: 5, Preferences: [model.NumChoices]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}
		a[i] = 1
	}
	tbl, err := occupancy.Aggregate(a, fams)
	require.NoError(t, err)
	return a, fams, tbl
}

func TestEvaluateOverloadedDayStaysFinite(t *testing.T) {
	a, fams, tbl := overloaded(t)
	require.True(t, math.IsInf(AccountingPenalty(tbl.DayTotals()), 1))

	res := Evaluate(a, fams, tbl)
	assert.False(t, res.Feasible)
	assert.Equal(t, Violation{Day: 1, People: 5000}, res.Violations[0])
	assert.Len(t, res.Violations, model.NumDays)
	assert.Zero(t, res.Accounting)
	assert.False(t, math.IsInf(res.Total, 0) || math.IsNaN(res.Total))
	assert.Equal(t, float64(res.Preference), res.Total)
}

func TestEvaluateFeasible(t *testing.T) {
	fams := make(family.Table, 0, model.NumDays*30)
	a := make(model.Assignment, 0, cap(fams))
	for d := 1; d <= model.NumDays; d++ {
		for i := 0; i < 30; i++ {
			fams = append(fams, model.Family{Size: 5, Preferences: [model.NumChoices]int{d}})
			a = append(a, d)
		}
	}
	tbl, err := occupancy.Aggregate(a, fams)
	require.NoError(t, err)

	res := Evaluate(a, fams, tbl)
	assert.True(t, res.Feasible)
	assert.Empty(t, res.Violations)
	assert.Zero(t, res.Preference)
	// 150 people every day: (150-125)/400 * sqrt(150) per day.
	assert.InDelta(t, float64(model.NumDays)*25.0/400*math.Sqrt(150), res.Accounting, 1e-9)
	assert.Equal(t, res.Accounting, res.Total)
}
