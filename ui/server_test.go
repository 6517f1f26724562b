package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tribunal/adapters/llm"
	"tribunal/adapters/memory"
	"tribunal/adapters/notify"
	"tribunal/app"
	"tribunal/internal"
	"tribunal/internal/config"
	"tribunal/internal/container"
)

func testServer() *Server {
	store := memory.NewRecordStore()
	narrator := llm.NewTemplateNarrator()
	notifier := &notify.Recorder{}
	c := &container.Container{
		Config:     &config.Config{},
		Logger:     internal.NewLogger(internal.LogLevelError),
		Store:      store,
		Narrator:   narrator,
		Notifier:   notifier,
		DocProd:    app.NewDocProdService(store),
		Timetable:  app.NewTimetableService(store, notifier),
		Costs:      app.NewCostService(store),
		Allocation: app.NewAllocationService(store, narrator),
	}
	return NewServer(c)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestCaseLifecycleOverHTTP(t *testing.T) {
	srv := testServer()

	rec := doJSON(t, srv, http.MethodPost, "/cases", map[string]any{
		"case_id":   "arb-2026-014",
		"case_name": "Aquila Shipping v. Borealis Energy",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// File and rule on a request.
	rec = doJSON(t, srv, http.MethodPost, "/cases/arb-2026-014/requests", map[string]any{
		"party":       "claimant",
		"description": "board minutes 2019-2021",
		"relevance":   "knowledge of the defect",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, srv, http.MethodPost,
		fmt.Sprintf("/cases/arb-2026-014/requests/%s/ruling", created.ID),
		map[string]any{"decision": "denied as overbroad", "allowed": false})
	require.Equal(t, http.StatusOK, rec.Code)

	// Allocation report over the same record.
	rec = doJSON(t, srv, http.MethodGet, "/cases/arb-2026-014/allocation", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var report struct {
		Narrative struct {
			Text   string `json:"text"`
			Source string `json:"source"`
		} `json:"narrative"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Equal(t, "template", report.Narrative.Source)
	require.Contains(t, report.Narrative.Text, "rejection rate of 100.0%")

	// HTML rendering of the same narrative.
	rec = doJSON(t, srv, http.MethodGet, "/cases/arb-2026-014/allocation.html", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "<h2>"))

	// Redfern export responds with a workbook.
	rec = doJSON(t, srv, http.MethodGet, "/cases/arb-2026-014/redfern.xlsx", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotZero(t, rec.Body.Len())
}

func TestUnknownCaseIs404(t *testing.T) {
	srv := testServer()
	rec := doJSON(t, srv, http.MethodGet, "/cases/missing/allocation", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidTransitionIs422(t *testing.T) {
	srv := testServer()
	doJSON(t, srv, http.MethodPost, "/cases", map[string]any{"case_id": "arb-1", "case_name": "x"})

	rec := doJSON(t, srv, http.MethodPost, "/cases/arb-1/requests", map[string]any{
		"party": "respondent", "description": "d", "relevance": "r",
	})
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Reply before any objection violates the transition table.
	rec = doJSON(t, srv, http.MethodPost,
		fmt.Sprintf("/cases/arb-1/requests/%s/reply", created.ID),
		map[string]any{"text": "premature"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMalformedPartyIs400(t *testing.T) {
	srv := testServer()
	doJSON(t, srv, http.MethodPost, "/cases", map[string]any{"case_id": "arb-2", "case_name": "x"})

	rec := doJSON(t, srv, http.MethodPost, "/cases/arb-2/requests", map[string]any{
		"party": "amicus", "description": "d", "relevance": "r",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
