package llm

import (
	"context"
	"strings"
	"time"

	"tribunal/domain/allocation"
	"tribunal/ports"
)

// defaultSynthesisTimeout bounds the generative call when the config
// carries no timeout of its own. Drafting is never allowed to block the
// allocation indefinitely; the template path is always reachable.
const defaultSynthesisTimeout = 20 * time.Second

// TemplateNarrator is the deterministic strategy: it renders the fixed
// four-section template from the metrics and cannot fail.
type TemplateNarrator struct{}

// NewTemplateNarrator creates the deterministic narrator.
func NewTemplateNarrator() *TemplateNarrator {
	return &TemplateNarrator{}
}

func (n *TemplateNarrator) Synthesize(_ context.Context, m allocation.Metrics) (ports.Narrative, error) {
	return ports.Narrative{
		Text:   allocation.RenderTemplate(m),
		Source: ports.SourceTemplate,
	}, nil
}

// NarratorAdapter is the two-strategy narrator: it delegates drafting to
// the chat-completion service when one is configured, and resolves to the
// deterministic template on any failure, timeout, or empty response. The
// template path never depends on the external call completing.
type NarratorAdapter struct {
	config Config
	client ports.LLMClient
}

// NewNarratorAdapter builds the narrator for the given config. With no
// API key configured the generative strategy is disabled up front and
// every synthesis takes the template path.
func NewNarratorAdapter(config Config) *NarratorAdapter {
	client, err := newLLMClient(config)
	if err != nil {
		return &NarratorAdapter{config: config}
	}
	return &NarratorAdapter{config: config, client: client}
}

// NewNarratorAdapterWithClient injects an explicit client. Used by tests
// and by callers that manage their own transport.
func NewNarratorAdapterWithClient(config Config, client ports.LLMClient) *NarratorAdapter {
	return &NarratorAdapter{config: config, client: client}
}

// Synthesize produces the allocation narrative. The error return is kept
// for interface symmetry; it is always nil, because the template fallback
// is guaranteed.
func (a *NarratorAdapter) Synthesize(ctx context.Context, m allocation.Metrics) (ports.Narrative, error) {
	if a.client == nil {
		return ports.Narrative{
			Text:   allocation.RenderTemplate(m),
			Source: ports.SourceTemplate,
		}, nil
	}

	timeout := a.config.Timeout
	if timeout <= 0 {
		timeout = defaultSynthesisTimeout
	}
	genCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := a.client.ChatCompletion(genCtx, a.config.Model, allocation.BuildPrompt(m), a.config.MaxTokens)
	if err == nil && strings.TrimSpace(text) != "" {
		return ports.Narrative{
			Text:   text,
			Source: ports.SourceGenerative,
		}, nil
	}

	note := "generative drafting unavailable; deterministic template used"
	if err != nil {
		note = "generative drafting failed (" + err.Error() + "); deterministic template used"
	}
	return ports.Narrative{
		Text:   allocation.RenderTemplate(m),
		Source: ports.SourceTemplate,
		Note:   note,
	}, nil
}
