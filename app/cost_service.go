package app

import (
	"context"
	"fmt"

	"tribunal/domain/core"
	"tribunal/domain/costs"
	"tribunal/ports"
)

// CostService maintains the append-only cost ledgers and sealed offers,
// and runs the sealed-offer evaluation at final-award time.
type CostService struct {
	store ports.RecordStore
}

// NewCostService creates a cost service.
func NewCostService(store ports.RecordStore) *CostService {
	return &CostService{store: store}
}

// LogCost appends a validated entry to the logger's ledger.
func (s *CostService) LogCost(ctx context.Context, caseID core.CaseID, phase, category, date string, amount float64, loggedBy core.Party) (costs.LogEntry, error) {
	entry, err := costs.NewLogEntry(phase, category, date, amount, loggedBy)
	if err != nil {
		return costs.LogEntry{}, err
	}
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return costs.LogEntry{}, err
	}
	record.Costs.Append(entry)
	if err := s.store.SaveSection(ctx, caseID, ports.SectionCosts, record.Costs); err != nil {
		return costs.LogEntry{}, err
	}
	return entry, nil
}

// RecordOffer stores a sealed settlement offer.
func (s *CostService) RecordOffer(ctx context.Context, caseID core.CaseID, party core.Party, amount, date string) (costs.SealedOffer, error) {
	if !party.IsSide() {
		return costs.SealedOffer{}, fmt.Errorf("offers are made by a case side, got %q", party)
	}
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return costs.SealedOffer{}, err
	}
	offer := costs.NewSealedOffer(party, amount, date)
	record.Costs.SealedOffers = append(record.Costs.SealedOffers, offer)
	if err := s.store.SaveSection(ctx, caseID, ports.SectionCosts, record.Costs); err != nil {
		return costs.SealedOffer{}, err
	}
	return offer, nil
}

// EvaluateFinalAward compares a proposed final award against every stored
// offer and marks the stored offers revealed. Returns the reversal
// triggers; conflict resolution between triggers stays with the tribunal.
func (s *CostService) EvaluateFinalAward(ctx context.Context, caseID core.CaseID, finalAward float64) ([]costs.ReversalTrigger, error) {
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return nil, err
	}
	triggers := costs.EvaluateOffers(record.Costs.SealedOffers, finalAward)

	revealed := false
	for i := range record.Costs.SealedOffers {
		if record.Costs.SealedOffers[i].Status == costs.OfferSealed {
			record.Costs.SealedOffers[i].Reveal()
			revealed = true
		}
	}
	if revealed {
		if err := s.store.SaveSection(ctx, caseID, ports.SectionCosts, record.Costs); err != nil {
			return nil, err
		}
	}
	return triggers, nil
}

// Ledger returns the case cost ledger.
func (s *CostService) Ledger(ctx context.Context, caseID core.CaseID) (costs.Ledger, error) {
	record, err := s.store.Load(ctx, caseID)
	if err != nil {
		return costs.Ledger{}, err
	}
	return record.Costs, nil
}
