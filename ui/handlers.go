package ui

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tribunal/adapters/docgen"
	"tribunal/adapters/excel"
	"tribunal/domain/core"
	"tribunal/domain/costs"
	"tribunal/domain/timetable"
	apperrors "tribunal/internal/errors"
	"tribunal/ports"
)

func (s *Server) handleCreateCase(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CaseID   string                 `json:"case_id"`
		CaseName string                 `json:"case_name"`
		Seat     string                 `json:"seat"`
		Settings costs.SettingsOverride `json:"cost_settings"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	id, err := core.ParseCaseID(body.CaseID)
	if err != nil {
		s.writeError(w, apperrors.InvalidInput(err.Error()))
		return
	}
	meta := ports.Meta{
		CaseName:     body.CaseName,
		Seat:         body.Seat,
		CostSettings: body.Settings,
	}
	if err := s.c.Store.CreateCase(r.Context(), id, meta); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"case_id": id.String()})
}

func (s *Server) handleListCases(w http.ResponseWriter, r *http.Request) {
	ids, err := s.c.Store.ListCases(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"cases": ids})
}

func (s *Server) handleGetCase(w http.ResponseWriter, r *http.Request) {
	record, err := s.c.Store.Load(r.Context(), caseID(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleFileRequest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Party       string `json:"party"`
		Description string `json:"description"`
		Relevance   string `json:"relevance"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	party, err := core.ParseParty(body.Party)
	if err != nil || !party.IsSide() {
		s.writeError(w, apperrors.InvalidInput("party must be claimant or respondent"))
		return
	}
	req, err := s.c.DocProd.FileRequest(r.Context(), caseID(r), party, body.Description, body.Relevance)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, req)
}

func (s *Server) handleObjection(w http.ResponseWriter, r *http.Request) {
	s.updateRequestText(w, r, s.c.DocProd.Object)
}

func (s *Server) handleReply(w http.ResponseWriter, r *http.Request) {
	s.updateRequestText(w, r, s.c.DocProd.Reply)
}

func (s *Server) updateRequestText(w http.ResponseWriter, r *http.Request,
	op func(context.Context, core.CaseID, core.RequestID, string) error) {
	var body struct {
		Text string `json:"text"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	requestID := core.RequestID(chi.URLParam(r, "requestID"))
	if err := op(r.Context(), caseID(r), requestID, body.Text); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

func (s *Server) handleRuling(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Decision string `json:"decision"`
		Allowed  bool   `json:"allowed"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	requestID := core.RequestID(chi.URLParam(r, "requestID"))
	if err := s.c.DocProd.Rule(r.Context(), caseID(r), requestID, body.Decision, body.Allowed); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ruled"})
}

func (s *Server) handleRedfernExport(w http.ResponseWriter, r *http.Request) {
	schedule, err := s.c.DocProd.Schedule(r.Context(), caseID(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="redfern_schedule.xlsx"`)
	if err := excel.WriteRedfernSchedule(w, schedule); err != nil {
		s.logger.Error("redfern export: %v", err)
	}
}

func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Milestone   string `json:"milestone"`
		Deadline    string `json:"deadline"`
		Responsible string `json:"responsible"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	responsible, err := core.ParseParty(body.Responsible)
	if err != nil {
		s.writeError(w, apperrors.InvalidInput(err.Error()))
		return
	}
	ev, err := s.c.Timetable.AddEvent(r.Context(), caseID(r), body.Milestone, body.Deadline, responsible)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, ev)
}

func (s *Server) handleSetEventStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	status, err := timetable.ParseComplianceStatus(body.Status)
	if err != nil {
		s.writeError(w, apperrors.InvalidInput(err.Error()))
		return
	}
	eventID := core.EventID(chi.URLParam(r, "eventID"))
	if err := s.c.Timetable.SetStatus(r.Context(), caseID(r), eventID, status); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := s.c.Timetable.Timeline(r.Context(), caseID(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"timeline": timeline})
}

func (s *Server) handleFileExtension(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EventID      string `json:"event_id"`
		Party        string `json:"party"`
		Reason       string `json:"reason"`
		ProposedDate string `json:"proposed_date"`
		Consensual   bool   `json:"consensual"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	party, err := core.ParseParty(body.Party)
	if err != nil {
		s.writeError(w, apperrors.InvalidInput(err.Error()))
		return
	}
	ext, err := s.c.Timetable.FileExtension(r.Context(), caseID(r),
		core.EventID(body.EventID), party, body.Reason, body.ProposedDate, body.Consensual)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, ext)
}

func (s *Server) handleExtensionDecision(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Approved bool   `json:"approved"`
		Note     string `json:"note"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	extensionID := core.ExtensionID(chi.URLParam(r, "extensionID"))
	if err := s.c.Timetable.ResolveExtension(r.Context(), caseID(r), extensionID, body.Approved, body.Note); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "resolved"})
}

func (s *Server) handleLogCost(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Phase    string  `json:"phase"`
		Category string  `json:"category"`
		Date     string  `json:"date"`
		Amount   float64 `json:"amount"`
		LoggedBy string  `json:"logged_by"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	loggedBy, err := core.ParseParty(body.LoggedBy)
	if err != nil {
		s.writeError(w, apperrors.InvalidInput(err.Error()))
		return
	}
	entry, err := s.c.Costs.LogCost(r.Context(), caseID(r), body.Phase, body.Category, body.Date, body.Amount, loggedBy)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleRecordOffer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Party  string `json:"party"`
		Amount string `json:"amount"`
		Date   string `json:"date"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	party, err := core.ParseParty(body.Party)
	if err != nil || !party.IsSide() {
		s.writeError(w, apperrors.InvalidInput("party must be claimant or respondent"))
		return
	}
	offer, err := s.c.Costs.RecordOffer(r.Context(), caseID(r), party, body.Amount, body.Date)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, offer)
}

func (s *Server) handleFinalAward(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount float64 `json:"amount"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	triggers, err := s.c.Costs.EvaluateFinalAward(r.Context(), caseID(r), body.Amount)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"triggers": triggers})
}

func (s *Server) handleAllocation(w http.ResponseWriter, r *http.Request) {
	report, err := s.c.Allocation.Synthesize(r.Context(), caseID(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleAllocationHTML(w http.ResponseWriter, r *http.Request) {
	report, err := s.c.Allocation.Synthesize(r.Context(), caseID(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	fragment := docgen.RenderNarrative("cost_allocation", report.Narrative.Text)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(fragment.HTML)); err != nil {
		s.logger.Error("write allocation html: %v", err)
	}
}
