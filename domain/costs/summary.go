package costs

import (
	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics for one cost ledger slice,
// surfaced alongside the allocation narrative.
type Summary struct {
	Total   float64 `json:"total"`
	Mean    float64 `json:"mean"`
	Largest float64 `json:"largest"`
	Entries int     `json:"entries"`
}

// Summarize computes totals for a ledger slice. An empty slice yields the
// zero summary rather than an error.
func Summarize(entries []LogEntry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}
	amounts := make([]float64, len(entries))
	for i, e := range entries {
		amounts[i] = e.Amount
	}
	total, _ := stats.Sum(amounts)
	mean, _ := stats.Mean(amounts)
	largest, _ := stats.Max(amounts)
	return Summary{
		Total:   total,
		Mean:    mean,
		Largest: largest,
		Entries: len(entries),
	}
}
