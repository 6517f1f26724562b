package docprod

import (
	"fmt"

	"tribunal/domain/core"
)

// RequestStatus tracks a document-production request through the Redfern
// workflow. Transitions are monotonic; Allowed and Denied are terminal.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusObjected  RequestStatus = "objected"
	StatusResponded RequestStatus = "responded"
	StatusAllowed   RequestStatus = "allowed"
	StatusDenied    RequestStatus = "denied"
)

// ParseRequestStatus validates a stored status string.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusPending, StatusObjected, StatusResponded, StatusAllowed, StatusDenied:
		return RequestStatus(s), nil
	default:
		return "", fmt.Errorf("unknown request status %q", s)
	}
}

// transitions is the closed set of legal moves:
// Pending -> {Objected -> Responded} -> {Allowed, Denied}.
var transitions = map[RequestStatus][]RequestStatus{
	StatusPending:   {StatusObjected, StatusAllowed, StatusDenied},
	StatusObjected:  {StatusResponded, StatusAllowed, StatusDenied},
	StatusResponded: {StatusAllowed, StatusDenied},
	StatusAllowed:   {},
	StatusDenied:    {},
}

// CanTransition reports whether moving from s to next is legal.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the tribunal has ruled.
func (s RequestStatus) Terminal() bool {
	return s == StatusAllowed || s == StatusDenied
}

// Request is one row of the Redfern Schedule. Created by the requesting
// party, objected to by the opponent, replied to by the requester, and
// ruled on by the arbitrator. Never deleted.
type Request struct {
	ID          core.RequestID `json:"id"`
	Party       core.Party     `json:"party"`
	Description string         `json:"description"`
	Relevance   string         `json:"relevance"`
	Objection   string         `json:"objection,omitempty"`
	Reply       string         `json:"reply,omitempty"`
	Decision    string         `json:"decision,omitempty"`
	Status      RequestStatus  `json:"status"`
}

// NewRequest files a request on behalf of party.
func NewRequest(party core.Party, description, relevance string) Request {
	return Request{
		ID:          core.RequestID(core.NewID()),
		Party:       party,
		Description: description,
		Relevance:   relevance,
		Status:      StatusPending,
	}
}

// Object records the opposing party's objection.
func (r *Request) Object(text string) error {
	if err := r.advance(StatusObjected); err != nil {
		return err
	}
	r.Objection = text
	return nil
}

// ReplyTo records the requesting party's reply to an objection.
func (r *Request) ReplyTo(text string) error {
	if err := r.advance(StatusResponded); err != nil {
		return err
	}
	r.Reply = text
	return nil
}

// Rule records the arbitrator's final ruling. allowed selects the
// terminal status.
func (r *Request) Rule(decision string, allowed bool) error {
	next := StatusDenied
	if allowed {
		next = StatusAllowed
	}
	if err := r.advance(next); err != nil {
		return err
	}
	r.Decision = decision
	return nil
}

func (r *Request) advance(next RequestStatus) error {
	if !r.Status.CanTransition(next) {
		return core.NewTransitionError(string(r.Status), string(next))
	}
	r.Status = next
	return nil
}

// Schedule holds both parties' request lists, keyed the way the record
// store persists them.
type Schedule struct {
	Claimant   []Request `json:"claimant"`
	Respondent []Request `json:"respondent"`
}

// ForParty returns the requests filed by one side.
func (s Schedule) ForParty(p core.Party) []Request {
	switch p {
	case core.PartyClaimant:
		return s.Claimant
	case core.PartyRespondent:
		return s.Respondent
	default:
		return nil
	}
}
