package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tribunal/adapters/memory"
	"tribunal/domain/core"
	"tribunal/domain/docprod"
)

func TestRedfernWorkflow(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	caseID := core.CaseID("case-redfern-1")
	newCase(t, store, caseID)

	svc := NewDocProdService(store)
	req, err := svc.FileRequest(ctx, caseID, core.PartyClaimant, "board minutes 2019-2021", "knowledge of the defect")
	require.NoError(t, err)
	require.Equal(t, docprod.StatusPending, req.Status)

	require.NoError(t, svc.Object(ctx, caseID, req.ID, "overbroad"))
	require.NoError(t, svc.Reply(ctx, caseID, req.ID, "narrowed to the product line"))
	require.NoError(t, svc.Rule(ctx, caseID, req.ID, "granted as narrowed", true))

	schedule, err := svc.Schedule(ctx, caseID)
	require.NoError(t, err)
	require.Len(t, schedule.Claimant, 1)
	got := schedule.Claimant[0]
	require.Equal(t, docprod.StatusAllowed, got.Status)
	require.Equal(t, "overbroad", got.Objection)
	require.Equal(t, "narrowed to the product line", got.Reply)
	require.Equal(t, "granted as narrowed", got.Decision)

	// Terminal status: no further mutation.
	require.Error(t, svc.Rule(ctx, caseID, req.ID, "second ruling", false))
}

func TestFileRequestRequiresCaseSide(t *testing.T) {
	store := memory.NewRecordStore()
	caseID := core.CaseID("case-redfern-2")
	newCase(t, store, caseID)

	_, err := NewDocProdService(store).FileRequest(context.Background(), caseID, core.PartyTribunal, "x", "y")
	require.Error(t, err)
}

func TestMutateUnknownRequest(t *testing.T) {
	store := memory.NewRecordStore()
	caseID := core.CaseID("case-redfern-3")
	newCase(t, store, caseID)

	err := NewDocProdService(store).Object(context.Background(), caseID, "nope", "objection")
	require.ErrorIs(t, err, core.ErrRequestNotFound)
}
