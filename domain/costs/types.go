package costs

import (
	"fmt"
	"strconv"
	"strings"

	"tribunal/domain/core"
)

// Settings is the effective per-case scoring configuration, passed by
// value into every computation rather than read from ambient state. The
// record's meta section stores a SettingsOverride and resolves it here.
type Settings struct {
	DocProdThreshold float64 `json:"doc_prod_threshold"`
	DelayPenaltyRate float64 `json:"delay_penalty_rate"`
}

// DefaultSettings returns the standing defaults: 75% rejection threshold,
// 0.5% cost deduction per day of delay.
func DefaultSettings() Settings {
	return Settings{
		DocProdThreshold: 75.0,
		DelayPenaltyRate: 0.5,
	}
}

// SettingsOverride is the stored form of the configuration: nil fields
// mean "not configured" and resolve to defaults, while an explicit zero
// is kept as entered. A zero threshold penalizes any denial; a zero rate
// disables delay deductions.
type SettingsOverride struct {
	DocProdThreshold *float64 `json:"doc_prod_threshold,omitempty"`
	DelayPenaltyRate *float64 `json:"delay_penalty_rate,omitempty"`
}

// Override pins both settings to explicit values.
func Override(threshold, rate float64) SettingsOverride {
	return SettingsOverride{DocProdThreshold: &threshold, DelayPenaltyRate: &rate}
}

// Resolve fills unset fields with defaults and returns the effective
// settings for computation.
func (o SettingsOverride) Resolve() Settings {
	s := DefaultSettings()
	if o.DocProdThreshold != nil {
		s.DocProdThreshold = *o.DocProdThreshold
	}
	if o.DelayPenaltyRate != nil {
		s.DelayPenaltyRate = *o.DelayPenaltyRate
	}
	return s
}

// LogEntry is one line of a party's cost ledger. Append-only; never
// mutated after creation.
type LogEntry struct {
	Phase    string     `json:"phase"`
	Category string     `json:"category"`
	Date     string     `json:"date"`
	Amount   float64    `json:"amount"`
	LoggedBy core.Party `json:"logged_by"`
}

// NewLogEntry validates and creates a cost entry.
func NewLogEntry(phase, category, date string, amount float64, loggedBy core.Party) (LogEntry, error) {
	if amount < 0 {
		return LogEntry{}, fmt.Errorf("%w: %.2f", core.ErrNegativeAmount, amount)
	}
	return LogEntry{
		Phase:    phase,
		Category: category,
		Date:     date,
		Amount:   amount,
		LoggedBy: loggedBy,
	}, nil
}

// OfferStatus tracks whether a sealed offer has been opened.
type OfferStatus string

const (
	OfferSealed   OfferStatus = "sealed"
	OfferRevealed OfferStatus = "revealed"
)

// SealedOffer is a confidential settlement offer. The amount is kept as
// entered; it is parsed at evaluation time so one malformed offer never
// poisons the batch. Confidentiality enforcement is a presentation
// concern: the evaluator always computes against all stored offers.
type SealedOffer struct {
	ID     core.OfferID `json:"id"`
	Party  core.Party   `json:"party"`
	Amount string       `json:"amount"`
	Date   string       `json:"date"`
	Status OfferStatus  `json:"status"`
}

// NewSealedOffer records a settlement offer.
func NewSealedOffer(party core.Party, amount, date string) SealedOffer {
	return SealedOffer{
		ID:     core.OfferID(core.NewID()),
		Party:  party,
		Amount: amount,
		Date:   date,
		Status: OfferSealed,
	}
}

// Reveal marks the offer as opened for the record.
func (o *SealedOffer) Reveal() {
	o.Status = OfferRevealed
}

// ParseAmount parses a stored monetary value, tolerating currency
// grouping commas. Failure is an explicit branch for the caller, not an
// exception to swallow.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", core.ErrMalformedAmount, s)
	}
	return v, nil
}

// Ledger holds all cost-related records for a case, keyed the way the
// record store persists them.
type Ledger struct {
	ClaimantLog   []LogEntry    `json:"claimant_log"`
	RespondentLog []LogEntry    `json:"respondent_log"`
	CommonLog     []LogEntry    `json:"common_log"`
	SealedOffers  []SealedOffer `json:"sealed_offers"`
}

// ForParty returns the ledger slice a party logs into. The tribunal and
// collective designators log into the common ledger.
func (l *Ledger) ForParty(p core.Party) []LogEntry {
	switch p {
	case core.PartyClaimant:
		return l.ClaimantLog
	case core.PartyRespondent:
		return l.RespondentLog
	default:
		return l.CommonLog
	}
}

// Append adds an entry to the ledger slice owned by its logger.
func (l *Ledger) Append(e LogEntry) {
	switch e.LoggedBy {
	case core.PartyClaimant:
		l.ClaimantLog = append(l.ClaimantLog, e)
	case core.PartyRespondent:
		l.RespondentLog = append(l.RespondentLog, e)
	default:
		l.CommonLog = append(l.CommonLog, e)
	}
}
