package ports

import (
	"context"

	"tribunal/domain/allocation"
)

// NarrativeSource identifies which strategy produced a narrative.
type NarrativeSource string

const (
	SourceGenerative NarrativeSource = "generative"
	SourceTemplate   NarrativeSource = "template"
)

// Narrative is a synthesized allocation narrative plus provenance. Note
// carries an informational detail when the generative path was attempted
// and failed; it never indicates a hard failure.
type Narrative struct {
	Text   string          `json:"text"`
	Source NarrativeSource `json:"source"`
	Note   string          `json:"note,omitempty"`
}

// Narrator turns allocation metrics into a narrative. Implementations
// must always return a usable narrative for valid metrics: the
// deterministic template is the guaranteed path, and any generative
// strategy resolves to it on failure or timeout.
type Narrator interface {
	Synthesize(ctx context.Context, m allocation.Metrics) (Narrative, error)
}
