package app

import (
	"context"
	"fmt"
	"time"

	"tribunal/domain/core"
	"tribunal/domain/timetable"
	"tribunal/ports"
)

// allParties is the standing recipient list for procedural notifications.
// Address resolution belongs to the delivery collaborator.
var allParties = []string{"claimant", "respondent", "tribunal"}

// TimetableService manages the shared procedural timetable and the
// extension-of-time workflow. State transitions emit notifications; a
// dispatch failure is logged by the notifier and never rolls back the
// procedural change.
type TimetableService struct {
	store    ports.RecordStore
	notifier ports.Notifier
	now      func() time.Time
}

// NewTimetableService creates a timetable service.
func NewTimetableService(store ports.RecordStore, notifier ports.Notifier) *TimetableService {
	return &TimetableService{store: store, notifier: notifier, now: time.Now}
}

// WithClock overrides the time source. Used by tests.
func (s *TimetableService) WithClock(now func() time.Time) *TimetableService {
	s.now = now
	return s
}

// AddEvent appends a milestone to the timetable, either at
// procedural-order generation or manually by the arbitrator.
func (s *TimetableService) AddEvent(ctx context.Context, caseID core.CaseID, milestone, deadline string, responsible core.Party) (timetable.Event, error) {
	if _, err := core.ParseDate(deadline); err != nil {
		return timetable.Event{}, err
	}
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return timetable.Event{}, err
	}
	ev := timetable.NewEvent(milestone, deadline, responsible)
	record.Timeline = append(record.Timeline, ev)
	if err := s.store.SaveSection(ctx, caseID, ports.SectionTimeline, record.Timeline); err != nil {
		return timetable.Event{}, err
	}
	s.notify(ctx, fmt.Sprintf("Timetable updated: %s", milestone),
		fmt.Sprintf("New milestone %q due %s, responsible: %s.", milestone, deadline, responsible.Title()))
	return ev, nil
}

// SetStatus moves an event's compliance status and records the change.
func (s *TimetableService) SetStatus(ctx context.Context, caseID core.CaseID, eventID core.EventID, status timetable.ComplianceStatus) error {
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return err
	}
	ev := findEvent(record.Timeline, eventID)
	if ev == nil {
		return fmt.Errorf("%w: %s", core.ErrEventNotFound, eventID)
	}
	from := ev.Status
	ev.History = append(ev.History, fmt.Sprintf("status %s -> %s", from, status))
	ev.Status = status
	if err := s.store.SaveSection(ctx, caseID, ports.SectionTimeline, record.Timeline); err != nil {
		return err
	}
	s.notify(ctx, fmt.Sprintf("Compliance update: %s", ev.Milestone),
		fmt.Sprintf("%q moved from %s to %s.", ev.Milestone, from, status))
	return nil
}

// Timeline returns the case timetable.
func (s *TimetableService) Timeline(ctx context.Context, caseID core.CaseID) ([]timetable.Event, error) {
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return record.Timeline, nil
}

// FileExtension files an extension-of-time request against an event.
func (s *TimetableService) FileExtension(ctx context.Context, caseID core.CaseID, eventID core.EventID, party core.Party, reason, proposedDate string, consensual bool) (timetable.Extension, error) {
	if _, err := core.ParseDate(proposedDate); err != nil {
		return timetable.Extension{}, err
	}
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return timetable.Extension{}, err
	}
	ev := findEvent(record.Timeline, eventID)
	if ev == nil {
		return timetable.Extension{}, fmt.Errorf("%w: %s", core.ErrEventNotFound, eventID)
	}

	// A request filed after the current deadline carries its lateness.
	daysLate := 0
	if deadline, err := core.ParseDate(ev.Deadline); err == nil {
		if late := core.DaysBetween(deadline, s.now()); late > 0 {
			daysLate = late
		}
	}

	ext := timetable.NewExtension(eventID, party, reason, proposedDate, consensual, daysLate)
	record.Delays = append(record.Delays, ext)
	if err := s.store.SaveSection(ctx, caseID, ports.SectionDelays, record.Delays); err != nil {
		return timetable.Extension{}, err
	}
	s.notify(ctx, fmt.Sprintf("Extension requested: %s", ev.Milestone),
		fmt.Sprintf("%s requests moving %q to %s. Reason: %s", party.Title(), ev.Milestone, proposedDate, reason))
	return ext, nil
}

// ResolveExtension records the tribunal's decision exactly once. Approval
// moves the event deadline, appends to the event history, and resets the
// event to awaiting compliance against the new date.
func (s *TimetableService) ResolveExtension(ctx context.Context, caseID core.CaseID, extensionID core.ExtensionID, approved bool, note string) error {
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return err
	}
	ext := findExtension(record.Delays, extensionID)
	if ext == nil {
		return fmt.Errorf("%w: %s", core.ErrExtensionNotFound, extensionID)
	}
	if err := ext.Resolve(approved, note); err != nil {
		return err
	}

	outcome := "denied"
	if approved {
		outcome = "approved"
	}
	// The resolution itself is the authoritative write; it lands before
	// the timeline so a failed reschedule never strands a moved deadline
	// against a still-pending request.
	if err := s.store.SaveSection(ctx, caseID, ports.SectionDelays, record.Delays); err != nil {
		return err
	}
	if approved {
		if ev := findEvent(record.Timeline, ext.EventID); ev != nil {
			ev.Reschedule(ext.ProposedDate, fmt.Sprintf("EoT %s by tribunal: %s", outcome, note))
			ev.Status = timetable.StatusAwaiting
			if err := s.store.SaveSection(ctx, caseID, ports.SectionTimeline, record.Timeline); err != nil {
				return err
			}
		}
	}
	s.notify(ctx, fmt.Sprintf("Extension %s", outcome),
		fmt.Sprintf("The tribunal has %s %s's extension request. %s", outcome, ext.Party.Title(), note))
	return nil
}

func (s *TimetableService) notify(ctx context.Context, subject, body string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Dispatch(ctx, ports.Notification{
		Recipients: allParties,
		Subject:    subject,
		Body:       body,
	})
}

func findEvent(timeline []timetable.Event, id core.EventID) *timetable.Event {
	for i := range timeline {
		if timeline[i].ID == id {
			return &timeline[i]
		}
	}
	return nil
}

func findExtension(delays []timetable.Extension, id core.ExtensionID) *timetable.Extension {
	for i := range delays {
		if delays[i].ID == id {
			return &delays[i]
		}
	}
	return nil
}
