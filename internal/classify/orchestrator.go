package classify

import (
	"context"
	"fmt"
	"log/slog"

	"reqstage/internal/llm"
	"reqstage/pkg/schema"
)

// ModelCall is the sole boundary to the text-generation collaborator: a
// prompt plus a maximum-response-length hint in, generated text out. The
// collaborator owns its own concurrency and timeout semantics; this
// package never retries a failed call.
type ModelCall func(ctx context.Context, prompt string, maxTokens int) (string, error)

// Response-length hints per tier. The structured response carries five
// sections; the flat listing is shorter.
const (
	classifyResponseTokens = 512
	listingResponseTokens  = 256
)

// truncationMarker is appended whenever source text is cut to fit the
// collaborator's context limits.
const truncationMarker = "..."

// Orchestrator runs the three escalating extraction tiers: structured
// parse of the model's classification response, numbered-list
// redistribution, and finally keyword classification of the original
// source text. Tiers are evaluated only as needed; the first non-empty
// classification wins. A model-call failure at any tier propagates to
// the caller - the fallback tiers handle "the model answered but the
// answer was unparseable", never call failure.
type Orchestrator struct {
	parser   *ResponseParser
	fallback *FallbackClassifier
}

// NewOrchestrator creates a new classification orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		parser:   NewResponseParser(),
		fallback: NewFallbackClassifier(),
	}
}

// Classify runs the tiered pipeline over the raw source text and reports
// which tier produced the result. The returned classification always has
// all five stage keys, even when every tier came back empty.
func (o *Orchestrator) Classify(ctx context.Context, rawText string, call ModelCall) (schema.Classification, schema.Tier, error) {
	// Tier 1: structured classification response.
	prompt := llm.BuildStageClassificationPrompt(Truncate(rawText, schema.ClassifyTruncateLimit))
	response, err := call(ctx, prompt, classifyResponseTokens)
	if err != nil {
		return nil, "", fmt.Errorf("classification call: %w", err)
	}

	result := o.parser.Parse(response)
	if !result.IsEmpty() {
		slog.Debug("structured parse succeeded", "requirements", result.Total())
		return result, schema.TierStructured, nil
	}

	// Tier 2: flat numbered list, redistributed round-robin.
	slog.Info("structured parse empty, escalating to listing tier")

	listPrompt := llm.BuildRequirementListingPrompt(Truncate(rawText, schema.ListingTruncateLimit))
	listResponse, err := call(ctx, listPrompt, listingResponseTokens)
	if err != nil {
		return nil, "", fmt.Errorf("listing call: %w", err)
	}

	items := ExtractNumberedItems(listResponse)
	RedistributeRoundRobin(result, items)
	if !result.IsEmpty() {
		slog.Debug("listing redistribution succeeded", "items", len(items))
		return result, schema.TierListing, nil
	}

	// Tier 3: keyword classification over the original source text.
	slog.Info("listing tier empty, escalating to keyword fallback")

	keyword := o.fallback.Classify(rawText)
	if !keyword.IsEmpty() {
		return keyword, schema.TierKeyword, nil
	}

	// Every tier came back empty: a valid, if unhelpful, result.
	return result, schema.TierNone, nil
}

// ClassifyRequirements is the narrow external contract: raw text and a
// model-call collaborator in, a five-stage classification out.
func ClassifyRequirements(ctx context.Context, rawText string, call ModelCall) (schema.Classification, error) {
	result, _, err := NewOrchestrator().Classify(ctx, rawText, call)
	return result, err
}

// Truncate cuts text to at most limit characters, appending a truncation
// marker when anything was dropped. Counted in runes so a multi-byte
// character is never split.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + truncationMarker
}
