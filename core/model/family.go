package model

// Domain constants of the workshop schedule.
const (
	NumDays    = 100
	NumChoices = 10
	// Unranked is the rank assigned to a family visiting on a day outside its
	// preference list.
	Unranked = NumChoices
	NumRanks = NumChoices + 1

	// Occupancy bounds shown as reference lines and used for scoring.
	MinOccupancy = 125
	MaxOccupancy = 300
)

// Family is a group of people sharing one ranked list of preferred days.
type Family struct {
	ID          int
	Size        int             // number of people, always positive
	Preferences [NumChoices]int // preferred days, most preferred first
}

// Rank returns the position of day in the preference list or Unranked when
// the day is not listed. The lowest position wins on duplicates.
func (f Family) Rank(day int) int {
	for r, d := range f.Preferences {
		if d == day {
			return r
		}
	}
	return Unranked
}
