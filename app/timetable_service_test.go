package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tribunal/adapters/memory"
	"tribunal/adapters/notify"
	"tribunal/domain/core"
	"tribunal/domain/timetable"
	"tribunal/ports"
)

func TestExtensionApprovalMovesDeadline(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	recorder := &notify.Recorder{}
	caseID := core.CaseID("case-eot-1")
	newCase(t, store, caseID)

	svc := NewTimetableService(store, recorder).WithClock(func() time.Time { return fixedToday })

	ev, err := svc.AddEvent(ctx, caseID, "Statement of Claim", "2026-04-01", core.PartyClaimant)
	require.NoError(t, err)

	ext, err := svc.FileExtension(ctx, caseID, ev.ID, core.PartyClaimant, "expert unavailable", "2026-04-15", false)
	require.NoError(t, err)
	require.Equal(t, timetable.ExtensionPending, ext.Status)
	require.Equal(t, 0, ext.DaysLate)

	require.NoError(t, svc.ResolveExtension(ctx, caseID, ext.ID, true, "granted; hearing unaffected"))

	timeline, err := svc.Timeline(ctx, caseID)
	require.NoError(t, err)
	require.Len(t, timeline, 1)
	require.Equal(t, "2026-04-15", timeline[0].Deadline)
	require.Equal(t, timetable.StatusAwaiting, timeline[0].Status)
	require.NotEmpty(t, timeline[0].History)

	// AddEvent, FileExtension, ResolveExtension each notify all parties.
	require.Len(t, recorder.Sent, 3)
	require.Equal(t, []string{"claimant", "respondent", "tribunal"}, recorder.Sent[2].Recipients)
	require.Contains(t, recorder.Sent[2].Subject, "approved")
}

func TestExtensionDenialLeavesDeadline(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	caseID := core.CaseID("case-eot-2")
	newCase(t, store, caseID)

	svc := NewTimetableService(store, nil).WithClock(func() time.Time { return fixedToday })
	ev, err := svc.AddEvent(ctx, caseID, "Expert Reports", "2026-05-01", core.PartyRespondent)
	require.NoError(t, err)

	ext, err := svc.FileExtension(ctx, caseID, ev.ID, core.PartyRespondent, "volume of material", "2026-06-01", false)
	require.NoError(t, err)
	require.NoError(t, svc.ResolveExtension(ctx, caseID, ext.ID, false, "insufficient grounds"))

	timeline, err := svc.Timeline(ctx, caseID)
	require.NoError(t, err)
	require.Equal(t, "2026-05-01", timeline[0].Deadline)

	// Resolution is once only.
	err = svc.ResolveExtension(ctx, caseID, ext.ID, true, "reconsidered")
	require.ErrorIs(t, err, core.ErrAlreadyResolved)
}

func TestLateExtensionCarriesDaysLate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	caseID := core.CaseID("case-eot-3")
	newCase(t, store, caseID)

	svc := NewTimetableService(store, nil).WithClock(func() time.Time { return fixedToday })
	ev, err := svc.AddEvent(ctx, caseID, "Witness Statements",
		core.FormatDate(fixedToday.AddDate(0, 0, -7)), core.PartyClaimant)
	require.NoError(t, err)

	ext, err := svc.FileExtension(ctx, caseID, ev.ID, core.PartyClaimant, "counsel change",
		core.FormatDate(fixedToday.AddDate(0, 0, 14)), true)
	require.NoError(t, err)
	require.Equal(t, 7, ext.DaysLate)
	require.True(t, ext.Consensual)
}

func TestSetStatusNotifiesParties(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	recorder := &notify.Recorder{}
	caseID := core.CaseID("case-eot-5")
	newCase(t, store, caseID)

	svc := NewTimetableService(store, recorder)
	ev, err := svc.AddEvent(ctx, caseID, "Document Production", "2026-06-01", core.PartyRespondent)
	require.NoError(t, err)
	require.NoError(t, svc.SetStatus(ctx, caseID, ev.ID, timetable.StatusCompleted))

	// One dispatch for the new milestone, one for the status change.
	require.Len(t, recorder.Sent, 2)
	last := recorder.Sent[1]
	require.Equal(t, []string{"claimant", "respondent", "tribunal"}, last.Recipients)
	require.Contains(t, last.Subject, "Document Production")
	require.Contains(t, last.Body, string(timetable.StatusUpcoming))
	require.Contains(t, last.Body, string(timetable.StatusCompleted))
}

// sectionFailingStore rejects writes to one section and passes the rest
// through, for exercising partial-write error branches.
type sectionFailingStore struct {
	ports.RecordStore
	failOn ports.Section
}

func (s *sectionFailingStore) SaveSection(ctx context.Context, caseID core.CaseID, section ports.Section, value any) error {
	if section == s.failOn {
		return errors.New("connection reset")
	}
	return s.RecordStore.SaveSection(ctx, caseID, section, value)
}

func TestApprovalPersistsResolutionWhenRescheduleFails(t *testing.T) {
	ctx := context.Background()
	backing := memory.NewRecordStore()
	caseID := core.CaseID("case-eot-6")
	newCase(t, backing, caseID)

	setup := NewTimetableService(backing, nil).WithClock(func() time.Time { return fixedToday })
	ev, err := setup.AddEvent(ctx, caseID, "Statement of Reply", "2026-04-01", core.PartyClaimant)
	require.NoError(t, err)
	ext, err := setup.FileExtension(ctx, caseID, ev.ID, core.PartyClaimant, "translations pending", "2026-04-20", false)
	require.NoError(t, err)

	store := &sectionFailingStore{RecordStore: backing, failOn: ports.SectionTimeline}
	svc := NewTimetableService(store, nil).WithClock(func() time.Time { return fixedToday })
	require.Error(t, svc.ResolveExtension(ctx, caseID, ext.ID, true, "granted"))

	// The decision is the authoritative write and must land even when the
	// reschedule write fails; the deadline stays put for a retry.
	record, err := backing.Load(ctx, caseID)
	require.NoError(t, err)
	require.Equal(t, timetable.ExtensionApproved, record.Delays[0].Status)
	require.Equal(t, "2026-04-01", record.Timeline[0].Deadline)
}

func TestAddEventRejectsMalformedDeadline(t *testing.T) {
	store := memory.NewRecordStore()
	caseID := core.CaseID("case-eot-4")
	newCase(t, store, caseID)

	svc := NewTimetableService(store, nil)
	_, err := svc.AddEvent(context.Background(), caseID, "Hearing", "next spring", core.PartyBoth)
	require.ErrorIs(t, err, core.ErrMalformedDate)
}
