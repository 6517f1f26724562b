package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	CaseID      ID
	RequestID   ID
	EventID     ID
	ExtensionID ID
	OfferID     ID
)

func (id CaseID) String() string      { return ID(id).String() }
func (id RequestID) String() string   { return ID(id).String() }
func (id EventID) String() string     { return ID(id).String() }
func (id ExtensionID) String() string { return ID(id).String() }
func (id OfferID) String() string     { return ID(id).String() }

// ParseCaseID parses a string into CaseID
func ParseCaseID(s string) (CaseID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("case ID cannot be empty")
	}
	return CaseID(s), nil
}

// ParseRequestID parses a string into RequestID
func ParseRequestID(s string) (RequestID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("request ID cannot be empty")
	}
	return RequestID(s), nil
}

// ParseEventID parses a string into EventID
func ParseEventID(s string) (EventID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("event ID cannot be empty")
	}
	return EventID(s), nil
}
