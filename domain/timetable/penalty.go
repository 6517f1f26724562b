package timetable

import (
	"fmt"
	"time"

	"tribunal/domain/core"
)

// PenaltyResult is the cumulative cost-deduction for one party's overdue
// obligations plus a per-event audit log.
type PenaltyResult struct {
	TotalPercent float64  `json:"total_percent"`
	Log          []string `json:"log"`
}

// Penalties computes the cumulative cost-deduction percentage accrued by
// role across the timeline, at rate percent per day overdue.
//
// An event counts when it is assigned to role, or to the collective
// designator, which charges every side independently rather than being
// split. Only events currently awaiting compliance accrue; an event that
// was late but has since been completed contributes nothing. Events whose
// deadline fails to parse are skipped, never fatal.
func Penalties(timeline []Event, role core.Party, rate float64, today time.Time) PenaltyResult {
	result := PenaltyResult{Log: []string{}}
	for _, ev := range timeline {
		if !ev.Responsible.Covers(role) {
			continue
		}
		if ev.Status != StatusAwaiting || ev.Deadline == "" {
			continue
		}
		deadline, err := core.ParseDate(ev.Deadline)
		if err != nil {
			// explicit skip: one bad record must not abort the aggregation
			continue
		}
		overdue := core.DaysBetween(deadline, today)
		if overdue <= 0 {
			continue
		}
		penalty := float64(overdue) * rate
		result.TotalPercent += penalty
		result.Log = append(result.Log,
			fmt.Sprintf("%s: %d days overdue (-%.1f%%)", ev.Milestone, overdue, penalty))
	}
	return result
}
