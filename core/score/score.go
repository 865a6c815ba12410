package score

import (
	"math"

	"github.com/kilianp07/santaviz/core/family"
	"github.com/kilianp07/santaviz/core/model"
	"github.com/kilianp07/santaviz/core/occupancy"
)

// Violation records a day whose occupancy lies outside the allowed bounds.
type Violation struct {
	Day    int `json:"day"`
	People int `json:"people"`
}

// Result is the cost breakdown of an assignment.
type Result struct {
	Preference int64       `json:"preference"`
	Accounting float64     `json:"accounting"`
	Total      float64     `json:"total"`
	Feasible   bool        `json:"feasible"`
	Violations []Violation `json:"violations,omitempty"`
}

// PreferenceCost returns the gift cost owed to a family of the given size
// visiting at the given choice rank.
func PreferenceCost(rank, size int) int64 {
	n := int64(size)
	switch rank {
	case 0:
		return 0
	case 1:
		return 50
	case 2:
		return 50 + 9*n
	case 3:
		return 100 + 9*n
	case 4:
		return 200 + 9*n
	case 5:
		return 200 + 18*n
	case 6:
		return 300 + 18*n
	case 7:
		return 300 + 36*n
	case 8:
		return 400 + 36*n
	case 9:
		return 500 + (36+199)*n
	default:
		return 500 + (36+398)*n
	}
}

// AccountingPenalty computes the workshop accounting penalty from the number
// of people on each day. The day after the last one counts as equal to it.
// Occupancies far outside [MinOccupancy, MaxOccupancy] overflow to infinity.
func AccountingPenalty(days [model.NumDays]int) float64 {
	penalty := 0.0
	prev := days[model.NumDays-1]
	for i := model.NumDays - 1; i >= 0; i-- {
		n := float64(days[i])
		diff := math.Abs(n - float64(prev))
		penalty += (n - model.MinOccupancy) / 400 * math.Pow(n, 0.5+diff/50)
		prev = days[i]
	}
	return penalty
}

// Violations lists the days outside [MinOccupancy, MaxOccupancy].
func Violations(days [model.NumDays]int) []Violation {
	var out []Violation
	for i, n := range days {
		if n < model.MinOccupancy || n > model.MaxOccupancy {
			out = append(out, Violation{Day: i + 1, People: n})
		}
	}
	return out
}

// Evaluate scores an assignment already aggregated into t. An assignment with
// occupancy violations is reported as infeasible and carries no accounting
// penalty, which is only defined within the occupancy bounds; its total is
// then the preference cost alone.
func Evaluate(a model.Assignment, fams family.Table, t *occupancy.Tables) Result {
	var res Result
	for f, day := range a {
		fam := fams[f]
		res.Preference += PreferenceCost(fam.Rank(day), fam.Size)
	}
	days := t.DayTotals()
	res.Violations = Violations(days)
	res.Feasible = len(res.Violations) == 0
	if res.Feasible {
		res.Accounting = AccountingPenalty(days)
	}
	res.Total = float64(res.Preference) + res.Accounting
	return res
}
