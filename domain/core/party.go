package core

import (
	"fmt"
	"strings"
)

// Party identifies who bears responsibility for a procedural act.
// Claimant and Respondent are the two sides; Tribunal covers acts of
// the arbitrator; Both designates collective obligations charged
// against each side independently.
type Party string

const (
	PartyClaimant   Party = "claimant"
	PartyRespondent Party = "respondent"
	PartyTribunal   Party = "tribunal"
	PartyBoth       Party = "both"
)

// ParseParty maps the free-form role strings found in stored records to a
// Party. Accepts "all" as a synonym for "both".
func ParseParty(s string) (Party, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "claimant":
		return PartyClaimant, nil
	case "respondent":
		return PartyRespondent, nil
	case "tribunal", "arbitrator":
		return PartyTribunal, nil
	case "both", "all":
		return PartyBoth, nil
	default:
		return "", fmt.Errorf("unknown party %q", s)
	}
}

// IsSide reports whether the party is one of the two case sides.
func (p Party) IsSide() bool {
	return p == PartyClaimant || p == PartyRespondent
}

// Opponent returns the opposing side. Only meaningful for sides.
func (p Party) Opponent() Party {
	switch p {
	case PartyClaimant:
		return PartyRespondent
	case PartyRespondent:
		return PartyClaimant
	default:
		return p
	}
}

// Covers reports whether an obligation assigned to p is charged against
// side. Collective obligations cover every side independently.
func (p Party) Covers(side Party) bool {
	return p == side || p == PartyBoth
}

// String returns the canonical lowercase form.
func (p Party) String() string { return string(p) }

// Title returns the capitalized display form used in narratives.
func (p Party) Title() string {
	switch p {
	case PartyClaimant:
		return "Claimant"
	case PartyRespondent:
		return "Respondent"
	case PartyTribunal:
		return "Tribunal"
	case PartyBoth:
		return "Both Parties"
	default:
		return string(p)
	}
}

// Sides lists the two case sides in conventional order.
func Sides() []Party {
	return []Party{PartyClaimant, PartyRespondent}
}
