package timetable

import (
	"strings"
	"testing"
	"time"

	"tribunal/domain/core"
)

var today = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func daysAgo(n int) string {
	return core.FormatDate(today.AddDate(0, 0, -n))
}

func TestPenalties(t *testing.T) {
	tests := []struct {
		name      string
		timeline  []Event
		role      core.Party
		rate      float64
		wantTotal float64
		wantLog   int
	}{
		{
			name: "ten days overdue at half percent",
			timeline: []Event{
				{Milestone: "Statement of Defence", Deadline: daysAgo(10), Responsible: core.PartyClaimant, Status: StatusAwaiting},
			},
			role:      core.PartyClaimant,
			rate:      0.5,
			wantTotal: 5.0,
			wantLog:   1,
		},
		{
			name: "not yet due contributes zero",
			timeline: []Event{
				{Milestone: "Hearing Bundle", Deadline: daysAgo(-5), Responsible: core.PartyClaimant, Status: StatusAwaiting},
			},
			role:      core.PartyClaimant,
			rate:      0.5,
			wantTotal: 0,
			wantLog:   0,
		},
		{
			name: "due today contributes zero",
			timeline: []Event{
				{Milestone: "Reply Submissions", Deadline: daysAgo(0), Responsible: core.PartyRespondent, Status: StatusAwaiting},
			},
			role:      core.PartyRespondent,
			rate:      0.5,
			wantTotal: 0,
			wantLog:   0,
		},
		{
			name: "completed late event contributes zero",
			timeline: []Event{
				{Milestone: "Document Production", Deadline: daysAgo(30), Responsible: core.PartyClaimant, Status: StatusCompleted},
			},
			role:      core.PartyClaimant,
			rate:      0.5,
			wantTotal: 0,
			wantLog:   0,
		},
		{
			name: "other party's event not charged",
			timeline: []Event{
				{Milestone: "Expert Reports", Deadline: daysAgo(4), Responsible: core.PartyRespondent, Status: StatusAwaiting},
			},
			role:      core.PartyClaimant,
			rate:      0.5,
			wantTotal: 0,
			wantLog:   0,
		},
		{
			name: "collective event charged against the queried side",
			timeline: []Event{
				{Milestone: "Joint Chronology", Deadline: daysAgo(6), Responsible: core.PartyBoth, Status: StatusAwaiting},
			},
			role:      core.PartyRespondent,
			rate:      0.5,
			wantTotal: 3.0,
			wantLog:   1,
		},
		{
			name: "malformed deadline skipped",
			timeline: []Event{
				{Milestone: "Corrupt Entry", Deadline: "not-a-date", Responsible: core.PartyClaimant, Status: StatusAwaiting},
				{Milestone: "Witness Statements", Deadline: daysAgo(2), Responsible: core.PartyClaimant, Status: StatusAwaiting},
			},
			role:      core.PartyClaimant,
			rate:      0.5,
			wantTotal: 1.0,
			wantLog:   1,
		},
		{
			name:      "empty timeline",
			timeline:  nil,
			role:      core.PartyClaimant,
			rate:      0.5,
			wantTotal: 0,
			wantLog:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Penalties(tt.timeline, tt.role, tt.rate, today)
			if got.TotalPercent != tt.wantTotal {
				t.Errorf("TotalPercent = %v, want %v", got.TotalPercent, tt.wantTotal)
			}
			if len(got.Log) != tt.wantLog {
				t.Errorf("log entries = %d, want %d: %v", len(got.Log), tt.wantLog, got.Log)
			}
		})
	}
}

func TestPenaltyLogFormat(t *testing.T) {
	timeline := []Event{
		{Milestone: "Statement of Defence", Deadline: daysAgo(10), Responsible: core.PartyClaimant, Status: StatusAwaiting},
	}
	got := Penalties(timeline, core.PartyClaimant, 0.5, today)
	if len(got.Log) != 1 {
		t.Fatalf("log entries = %d, want 1", len(got.Log))
	}
	if !strings.Contains(got.Log[0], "10 days overdue (-5.0%)") {
		t.Errorf("log line %q missing overdue detail", got.Log[0])
	}
	if !strings.HasPrefix(got.Log[0], "Statement of Defence:") {
		t.Errorf("log line %q missing milestone prefix", got.Log[0])
	}
}

func TestCollectiveEventsChargeBothSidesIndependently(t *testing.T) {
	timeline := []Event{
		{Milestone: "Joint Bundle", Deadline: daysAgo(8), Responsible: core.PartyBoth, Status: StatusAwaiting},
	}
	for _, side := range core.Sides() {
		got := Penalties(timeline, side, 0.5, today)
		if got.TotalPercent != 4.0 {
			t.Errorf("%s total = %v, want 4.0", side, got.TotalPercent)
		}
	}
}

func TestPenaltyMonotonicInLateness(t *testing.T) {
	prev := -1.0
	for days := 0; days <= 30; days += 5 {
		timeline := []Event{
			{Milestone: "M", Deadline: daysAgo(days), Responsible: core.PartyClaimant, Status: StatusAwaiting},
		}
		got := Penalties(timeline, core.PartyClaimant, 0.5, today)
		if got.TotalPercent < prev {
			t.Fatalf("penalty decreased at %d days: %v < %v", days, got.TotalPercent, prev)
		}
		prev = got.TotalPercent
	}
}

func TestExtensionResolveOnce(t *testing.T) {
	ev := NewEvent("Statement of Claim", "2026-04-01", core.PartyClaimant)
	x := NewExtension(ev.ID, core.PartyClaimant, "expert unavailable", "2026-04-15", false, 0)

	if err := x.Resolve(true, "granted; hearing dates unaffected"); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if x.Status != ExtensionApproved {
		t.Errorf("status = %s, want approved", x.Status)
	}
	if err := x.Resolve(false, "second decision"); err == nil {
		t.Error("second resolution should be rejected")
	}
}

func TestEventRescheduleAppendsHistory(t *testing.T) {
	ev := NewEvent("Statement of Claim", "2026-04-01", core.PartyClaimant)
	ev.Reschedule("2026-04-15", "EoT granted")
	ev.Reschedule("2026-04-20", "consensual extension")
	if ev.Deadline != "2026-04-20" {
		t.Errorf("deadline = %s, want 2026-04-20", ev.Deadline)
	}
	if len(ev.History) != 2 {
		t.Fatalf("history entries = %d, want 2", len(ev.History))
	}
	if !strings.Contains(ev.History[0], "2026-04-01 -> 2026-04-15") {
		t.Errorf("history[0] = %q missing original date", ev.History[0])
	}
}
