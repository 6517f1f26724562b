package app

import (
	"context"
	"time"

	"tribunal/domain/allocation"
	"tribunal/domain/core"
	"tribunal/domain/costs"
	"tribunal/domain/docprod"
	"tribunal/domain/timetable"
	"tribunal/ports"
)

// AllocationReport is the synthesizer output: the structured metrics plus
// the narrative produced from them.
type AllocationReport struct {
	Metrics   allocation.Metrics `json:"metrics"`
	Narrative ports.Narrative    `json:"narrative"`
}

// AllocationService is the cost-allocation synthesizer: it gathers both
// parties' conduct scores and delay penalties from the case record and
// hands the structured metrics to the narrator.
type AllocationService struct {
	store    ports.RecordStore
	narrator ports.Narrator
	now      func() time.Time
}

// NewAllocationService creates an allocation service.
func NewAllocationService(store ports.RecordStore, narrator ports.Narrator) *AllocationService {
	return &AllocationService{store: store, narrator: narrator, now: time.Now}
}

// WithClock overrides the time source. Used by tests.
func (s *AllocationService) WithClock(now func() time.Time) *AllocationService {
	s.now = now
	return s
}

// BuildMetrics computes the structured allocation metrics for a case.
// Settings come from the record's meta section with defaults applied, and
// are passed by value into every domain computation.
func (s *AllocationService) BuildMetrics(ctx context.Context, caseID core.CaseID) (allocation.Metrics, error) {
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return allocation.Metrics{}, err
	}
	settings := record.Settings()
	today := s.now()

	m := allocation.Metrics{
		CaseID:     caseID,
		Settings:   settings,
		Claimant:   partyMetrics(record, core.PartyClaimant, settings, today),
		Respondent: partyMetrics(record, core.PartyRespondent, settings, today),
		CommonCost: costs.Summarize(record.Costs.CommonLog),
	}
	return m, nil
}

// Synthesize produces the allocation report for a case. The narrator
// guarantees a usable narrative whether or not a generative service is
// configured.
func (s *AllocationService) Synthesize(ctx context.Context, caseID core.CaseID) (*AllocationReport, error) {
	metrics, err := s.BuildMetrics(ctx, caseID)
	if err != nil {
		return nil, err
	}
	narrative, err := s.narrator.Synthesize(ctx, metrics)
	if err != nil {
		return nil, err
	}
	return &AllocationReport{Metrics: metrics, Narrative: narrative}, nil
}

func partyMetrics(record *ports.CaseRecord, party core.Party, settings costs.Settings, today time.Time) allocation.PartyMetrics {
	return allocation.PartyMetrics{
		Party:   party,
		Conduct: docprod.Score(record.DocProd.ForParty(party), settings.DocProdThreshold),
		Delay:   timetable.Penalties(record.Timeline, party, settings.DelayPenaltyRate, today),
		Costs:   costs.Summarize(record.Costs.ForParty(party)),
	}
}
