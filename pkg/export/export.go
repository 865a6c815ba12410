package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/santaviz/core/metrics"
	"github.com/kilianp07/santaviz/core/model"
	"github.com/kilianp07/santaviz/core/occupancy"
)

// Output file names.
const (
	SummaryJSON  = "summary.json"
	OccupancyCSV = "occupancy.csv"
)

// WriteJSON writes the run summary to w as indented JSON.
func WriteJSON(w io.Writer, s metrics.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Header returns the CSV header of the occupancy table.
func Header() []string {
	h := make([]string, 0, model.NumRanks+2)
	h = append(h, "day")
	for r := 0; r < model.NumChoices; r++ {
		h = append(h, "rank_"+strconv.Itoa(r))
	}
	return append(h, "unranked", "total")
}

// WriteCSV writes one row per day with the people count of every rank and the
// day total.
func WriteCSV(w io.Writer, t *occupancy.Tables) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	totals := t.DayTotals()
	rec := make([]string, model.NumRanks+2)
	for d, row := range t.Days {
		rec[0] = strconv.Itoa(d + 1)
		for r, n := range row {
			rec[r+1] = strconv.Itoa(n)
		}
		rec[len(rec)-1] = strconv.Itoa(totals[d])
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
