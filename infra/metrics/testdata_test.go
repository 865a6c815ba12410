package metrics

import (
	"time"

	coremetrics "github.com/kilianp07/santaviz/core/metrics"
	"github.com/kilianp07/santaviz/core/model"
	"github.com/kilianp07/santaviz/core/occupancy"
	"github.com/kilianp07/santaviz/core/score"
)

func sampleSummary() coremetrics.Summary {
	var t occupancy.Tables
	t.Days[4][0] = 4
	t.Days[49][model.Unranked] = 3
	t.Choices[0] = 4
	t.Choices[model.Unranked] = 3
	a := model.Assignment{5, 50}
	res := score.Result{Preference: 1802, Accounting: 12.3456, Total: 1814.3456}
	return coremetrics.NewSummary("run-1", "results.csv", 2, a, &t, res, time.Unix(1575800000, 0).UTC())
}
