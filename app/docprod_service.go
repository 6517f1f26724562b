package app

import (
	"context"
	"fmt"

	"tribunal/domain/core"
	"tribunal/domain/docprod"
	"tribunal/ports"
)

// DocProdService runs the Redfern workflow: file, object, reply, rule.
// Every mutation is a whole-section read-modify-write of the doc_prod
// section.
type DocProdService struct {
	store ports.RecordStore
}

// NewDocProdService creates a document-production service.
func NewDocProdService(store ports.RecordStore) *DocProdService {
	return &DocProdService{store: store}
}

// FileRequest files a new request on behalf of party.
func (s *DocProdService) FileRequest(ctx context.Context, caseID core.CaseID, party core.Party, description, relevance string) (docprod.Request, error) {
	if !party.IsSide() {
		return docprod.Request{}, fmt.Errorf("requests are filed by a case side, got %q", party)
	}
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return docprod.Request{}, err
	}
	req := docprod.NewRequest(party, description, relevance)
	switch party {
	case core.PartyClaimant:
		record.DocProd.Claimant = append(record.DocProd.Claimant, req)
	case core.PartyRespondent:
		record.DocProd.Respondent = append(record.DocProd.Respondent, req)
	}
	if err := s.store.SaveSection(ctx, caseID, ports.SectionDocProd, record.DocProd); err != nil {
		return docprod.Request{}, err
	}
	return req, nil
}

// Object records the opposing party's objection to a request.
func (s *DocProdService) Object(ctx context.Context, caseID core.CaseID, requestID core.RequestID, text string) error {
	return s.mutate(ctx, caseID, requestID, func(r *docprod.Request) error {
		return r.Object(text)
	})
}

// Reply records the requesting party's reply to an objection.
func (s *DocProdService) Reply(ctx context.Context, caseID core.CaseID, requestID core.RequestID, text string) error {
	return s.mutate(ctx, caseID, requestID, func(r *docprod.Request) error {
		return r.ReplyTo(text)
	})
}

// Rule records the arbitrator's final ruling on a request.
func (s *DocProdService) Rule(ctx context.Context, caseID core.CaseID, requestID core.RequestID, decision string, allowed bool) error {
	return s.mutate(ctx, caseID, requestID, func(r *docprod.Request) error {
		return r.Rule(decision, allowed)
	})
}

// Schedule returns the full Redfern schedule for a case.
func (s *DocProdService) Schedule(ctx context.Context, caseID core.CaseID) (docprod.Schedule, error) {
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return docprod.Schedule{}, err
	}
	return record.DocProd, nil
}

func (s *DocProdService) mutate(ctx context.Context, caseID core.CaseID, requestID core.RequestID, fn func(*docprod.Request) error) error {
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return err
	}
	req := findRequest(&record.DocProd, requestID)
	if req == nil {
		return fmt.Errorf("%w: %s", core.ErrRequestNotFound, requestID)
	}
	if err := fn(req); err != nil {
		return err
	}
	return s.store.SaveSection(ctx, caseID, ports.SectionDocProd, record.DocProd)
}

func findRequest(schedule *docprod.Schedule, id core.RequestID) *docprod.Request {
	for i := range schedule.Claimant {
		if schedule.Claimant[i].ID == id {
			return &schedule.Claimant[i]
		}
	}
	for i := range schedule.Respondent {
		if schedule.Respondent[i].ID == id {
			return &schedule.Respondent[i]
		}
	}
	return nil
}
