package occupancy

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/kilianp07/santaviz/core/family"
	"github.com/kilianp07/santaviz/core/model"
)

var (
	// ErrDayOutOfRange indicates an assigned day outside [1, NumDays].
	ErrDayOutOfRange = errors.New("day out of range")
	// ErrLengthMismatch indicates the assignment and the family table differ
	// in length.
	ErrLengthMismatch = errors.New("assignment length mismatch")
	// ErrInconsistent is returned by Check when the two tables disagree.
	ErrInconsistent = errors.New("inconsistent occupancy tables")
)

// Tables holds the person counts of one assignment.
type Tables struct {
	// Days is indexed by day-1 then by choice rank.
	Days [model.NumDays][model.NumRanks]int
	// Choices is indexed by choice rank.
	Choices [model.NumRanks]int
}

// Aggregate sums family sizes per (day, rank) and per rank. Family f visits on
// a[f]; its rank is the first position of that day in its preferences or
// model.Unranked.
func Aggregate(a model.Assignment, fams family.Table) (*Tables, error) {
	if len(a) != len(fams) {
		return nil, fmt.Errorf("%d days for %d families: %w", len(a), len(fams), ErrLengthMismatch)
	}
	var t Tables
	for f, day := range a {
		if !model.ValidDay(day) {
			return nil, fmt.Errorf("family %d assigned day %d: %w", f, day, ErrDayOutOfRange)
		}
		fam := fams[f]
		rank := fam.Rank(day)
		t.Days[day-1][rank] += fam.Size
		t.Choices[rank] += fam.Size
	}
	return &t, nil
}

// DayTotals returns the number of people on each day, indexed by day-1.
func (t *Tables) DayTotals() [model.NumDays]int {
	var out [model.NumDays]int
	for d, row := range t.Days {
		for _, n := range row {
			out[d] += n
		}
	}
	return out
}

// Total returns the number of people across all ranks.
func (t *Tables) Total() int {
	n := 0
	for _, c := range t.Choices {
		n += c
	}
	return n
}

// Matrix returns the day table as a NumDays x NumRanks dense matrix.
func (t *Tables) Matrix() *mat.Dense {
	m := mat.NewDense(model.NumDays, model.NumRanks, nil)
	for d, row := range t.Days {
		for r, n := range row {
			m.Set(d, r, float64(n))
		}
	}
	return m
}

// Check verifies that the column sums of the day table equal the choice
// table and that both hold the same grand total.
func (t *Tables) Check() error {
	m := t.Matrix()
	choices := make([]float64, model.NumRanks)
	for r, n := range t.Choices {
		choices[r] = float64(n)
		col := mat.Col(nil, r, m)
		if sum := floats.Sum(col); sum != choices[r] {
			return fmt.Errorf("rank %d: days sum to %v, choices hold %v: %w", r, sum, choices[r], ErrInconsistent)
		}
	}
	if total, want := mat.Sum(m), floats.Sum(choices); total != want {
		return fmt.Errorf("total %v != %v: %w", total, want, ErrInconsistent)
	}
	return nil
}
