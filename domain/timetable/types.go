package timetable

import (
	"fmt"

	"tribunal/domain/core"
)

// ComplianceStatus tracks where a timetable obligation stands.
type ComplianceStatus string

const (
	StatusUpcoming  ComplianceStatus = "upcoming"
	StatusCommenced ComplianceStatus = "commenced_pending"
	StatusAwaiting  ComplianceStatus = "awaiting_compliance"
	StatusCompleted ComplianceStatus = "completed"
)

// ParseComplianceStatus validates a stored status string.
func ParseComplianceStatus(s string) (ComplianceStatus, error) {
	switch ComplianceStatus(s) {
	case StatusUpcoming, StatusCommenced, StatusAwaiting, StatusCompleted:
		return ComplianceStatus(s), nil
	default:
		return "", fmt.Errorf("unknown compliance status %q", s)
	}
}

// Event is one milestone of the procedural timetable. Events are created
// at procedural-order generation or manually by the arbitrator and are
// never deleted; date changes append to History.
type Event struct {
	ID          core.EventID     `json:"id"`
	Milestone   string           `json:"milestone"`
	Deadline    string           `json:"deadline"` // calendar date, core.DateLayout
	Responsible core.Party       `json:"responsible"`
	Status      ComplianceStatus `json:"status"`
	History     []string         `json:"history,omitempty"`
}

// NewEvent creates a timetable event. The deadline given here is the
// event's current date until an extension moves it.
func NewEvent(milestone, deadline string, responsible core.Party) Event {
	return Event{
		ID:          core.EventID(core.NewID()),
		Milestone:   milestone,
		Deadline:    deadline,
		Responsible: responsible,
		Status:      StatusUpcoming,
	}
}

// Reschedule moves the deadline and appends an audit line to the event
// history. The history is append-only; the original date survives there.
func (e *Event) Reschedule(newDeadline, note string) {
	e.History = append(e.History, fmt.Sprintf("deadline moved %s -> %s: %s", e.Deadline, newDeadline, note))
	e.Deadline = newDeadline
}

// ExtensionStatus tracks an extension-of-time request.
type ExtensionStatus string

const (
	ExtensionPending  ExtensionStatus = "pending"
	ExtensionApproved ExtensionStatus = "approved"
	ExtensionDenied   ExtensionStatus = "denied"
)

// ParseExtensionStatus validates a stored status string.
func ParseExtensionStatus(s string) (ExtensionStatus, error) {
	switch ExtensionStatus(s) {
	case ExtensionPending, ExtensionApproved, ExtensionDenied:
		return ExtensionStatus(s), nil
	default:
		return "", fmt.Errorf("unknown extension status %q", s)
	}
}

// Extension is an extension-of-time request against one timetable event.
// Resolved exactly once by the arbitrator; immutable afterwards except by
// being superseded by a new request.
type Extension struct {
	ID           core.ExtensionID `json:"id"`
	EventID      core.EventID     `json:"event_id"`
	Party        core.Party       `json:"party"`
	Reason       string           `json:"reason"`
	ProposedDate string           `json:"proposed_date"`
	Status       ExtensionStatus  `json:"status"`
	Decision     string           `json:"decision,omitempty"`
	Consensual   bool             `json:"consensual"`
	DaysLate     int              `json:"days_late,omitempty"`
}

// NewExtension files an extension-of-time request.
func NewExtension(eventID core.EventID, party core.Party, reason, proposedDate string, consensual bool, daysLate int) Extension {
	return Extension{
		ID:           core.ExtensionID(core.NewID()),
		EventID:      eventID,
		Party:        party,
		Reason:       reason,
		ProposedDate: proposedDate,
		Status:       ExtensionPending,
		Consensual:   consensual,
		DaysLate:     daysLate,
	}
}

// Resolve records the tribunal's decision. A resolved request cannot be
// resolved again.
func (x *Extension) Resolve(approved bool, note string) error {
	if x.Status != ExtensionPending {
		return fmt.Errorf("%w: extension %s is %s", core.ErrAlreadyResolved, x.ID, x.Status)
	}
	if approved {
		x.Status = ExtensionApproved
	} else {
		x.Status = ExtensionDenied
	}
	x.Decision = note
	return nil
}
