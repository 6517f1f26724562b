package costs

import (
	"testing"

	"tribunal/domain/core"
)

func TestEvaluateOffers(t *testing.T) {
	tests := []struct {
		name       string
		offers     []SealedOffer
		finalAward float64
		want       int
	}{
		{
			name: "award below offer triggers reversal",
			offers: []SealedOffer{
				{Party: core.PartyRespondent, Amount: "3,800,000", Date: "2025-11-02", Status: OfferSealed},
			},
			finalAward: 3000000,
			want:       1,
		},
		{
			name: "award above offer does not trigger",
			offers: []SealedOffer{
				{Party: core.PartyRespondent, Amount: "2500000", Date: "2025-11-02", Status: OfferSealed},
			},
			finalAward: 3000000,
			want:       0,
		},
		{
			name: "award equal to offer does not trigger",
			offers: []SealedOffer{
				{Party: core.PartyClaimant, Amount: "3000000", Date: "2025-11-02", Status: OfferSealed},
			},
			finalAward: 3000000,
			want:       0,
		},
		{
			name: "malformed amount skipped without aborting batch",
			offers: []SealedOffer{
				{Party: core.PartyClaimant, Amount: "confidential", Date: "2025-10-01", Status: OfferSealed},
				{Party: core.PartyRespondent, Amount: "3500000", Date: "2025-11-02", Status: OfferSealed},
			},
			finalAward: 3000000,
			want:       1,
		},
		{
			name: "offers from both parties may trigger independently",
			offers: []SealedOffer{
				{Party: core.PartyClaimant, Amount: "4000000", Date: "2025-09-15", Status: OfferSealed},
				{Party: core.PartyRespondent, Amount: "3800000", Date: "2025-11-02", Status: OfferSealed},
			},
			finalAward: 3000000,
			want:       2,
		},
		{
			name:       "no offers yields empty trigger list",
			offers:     nil,
			finalAward: 3000000,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateOffers(tt.offers, tt.finalAward)
			if len(got) != tt.want {
				t.Errorf("triggers = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestEvaluateOffersTriggerFields(t *testing.T) {
	offers := []SealedOffer{
		{Party: core.PartyRespondent, Amount: "3,800,000", Date: "2025-11-02", Status: OfferSealed},
	}
	got := EvaluateOffers(offers, 3000000)
	if len(got) != 1 {
		t.Fatalf("triggers = %d, want 1", len(got))
	}
	trig := got[0]
	if trig.Offerer != core.PartyRespondent {
		t.Errorf("Offerer = %s, want respondent", trig.Offerer)
	}
	if trig.OfferAmount != 3800000 {
		t.Errorf("OfferAmount = %v, want 3800000", trig.OfferAmount)
	}
	if trig.AwardAmount != 3000000 {
		t.Errorf("AwardAmount = %v, want 3000000", trig.AwardAmount)
	}
	if trig.OfferDate != "2025-11-02" {
		t.Errorf("OfferDate = %s, want 2025-11-02", trig.OfferDate)
	}
}

func TestParseAmount(t *testing.T) {
	if v, err := ParseAmount(" 1,250,000.50 "); err != nil || v != 1250000.50 {
		t.Errorf("ParseAmount grouped = %v, %v", v, err)
	}
	if _, err := ParseAmount("TBD"); err == nil {
		t.Error("ParseAmount should fail on non-numeric input")
	}
}

func TestSummarize(t *testing.T) {
	entries := []LogEntry{
		{Phase: "Pleadings", Category: "Counsel Fees", Amount: 120000, LoggedBy: core.PartyClaimant},
		{Phase: "Hearing", Category: "Counsel Fees", Amount: 240000, LoggedBy: core.PartyClaimant},
		{Phase: "Hearing", Category: "Expert Fees", Amount: 60000, LoggedBy: core.PartyClaimant},
	}
	got := Summarize(entries)
	if got.Total != 420000 {
		t.Errorf("Total = %v, want 420000", got.Total)
	}
	if got.Mean != 140000 {
		t.Errorf("Mean = %v, want 140000", got.Mean)
	}
	if got.Largest != 240000 {
		t.Errorf("Largest = %v, want 240000", got.Largest)
	}
	if got.Entries != 3 {
		t.Errorf("Entries = %d, want 3", got.Entries)
	}

	if empty := Summarize(nil); empty != (Summary{}) {
		t.Errorf("empty ledger summary = %+v, want zero", empty)
	}
}

func TestNewLogEntryRejectsNegativeAmount(t *testing.T) {
	if _, err := NewLogEntry("Hearing", "Counsel Fees", "2026-01-10", -5, core.PartyClaimant); err == nil {
		t.Error("negative amount should be rejected")
	}
}

func TestSettingsResolve(t *testing.T) {
	got := SettingsOverride{}.Resolve()
	if got.DocProdThreshold != 75.0 || got.DelayPenaltyRate != 0.5 {
		t.Errorf("Resolve unset settings = %+v, want defaults", got)
	}
	custom := Override(60, 1.0).Resolve()
	if custom.DocProdThreshold != 60 || custom.DelayPenaltyRate != 1.0 {
		t.Errorf("Resolve pinned settings = %+v, want unchanged", custom)
	}
	// An explicit zero is configuration, not absence: threshold 0 makes
	// any denial trip the penalty, rate 0 turns off delay deductions.
	zeroed := Override(0, 0).Resolve()
	if zeroed.DocProdThreshold != 0 || zeroed.DelayPenaltyRate != 0 {
		t.Errorf("Resolve zeroed settings = %+v, want zeros kept", zeroed)
	}
}
