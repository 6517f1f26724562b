package costs

import (
	"tribunal/domain/core"
)

// ReversalTrigger records that a final award failed to beat a sealed
// offer: the offering party did better by settling, so the opposing side
// bears cost-shifting liability from the offer date forward. This
// component only identifies beaten offers; the consumer applies the
// liability and resolves conflicts between triggers.
type ReversalTrigger struct {
	Offerer     core.Party `json:"offerer"`
	OfferDate   string     `json:"offer_date"`
	OfferAmount float64    `json:"offer_amount"`
	AwardAmount float64    `json:"award_amount"`
}

// EvaluateOffers compares the proposed final award against every stored
// offer. A trigger is emitted iff the award is strictly below the offer;
// an award exactly matching an offer does not trigger. Offers are
// evaluated independently, without ranking or deduplication, and a
// malformed amount skips only that offer.
func EvaluateOffers(offers []SealedOffer, finalAward float64) []ReversalTrigger {
	triggers := []ReversalTrigger{}
	for _, offer := range offers {
		amount, err := ParseAmount(offer.Amount)
		if err != nil {
			continue
		}
		if finalAward < amount {
			triggers = append(triggers, ReversalTrigger{
				Offerer:     offer.Party,
				OfferDate:   offer.Date,
				OfferAmount: amount,
				AwardAmount: finalAward,
			})
		}
	}
	return triggers
}
