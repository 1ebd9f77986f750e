package llm

import (
	"context"
)

// MockModel is a scripted text-generation collaborator for testing. It
// records every call so tests can assert on escalation order and prompt
// contents.
type MockModel struct {
	// Responses are returned in order; the last one repeats once the
	// script runs out.
	Responses []string

	// Err, when set, is returned by every call.
	Err error

	// Calls counts invocations.
	Calls int

	// Prompts records each prompt received.
	Prompts []string

	// MaxTokens records each response-length hint received.
	MaxTokens []int
}

// GenerateText mocks text generation. It has the same signature as
// (*Client).GenerateText so either can serve as the orchestrator's
// ModelCall.
func (m *MockModel) GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	m.Calls++
	m.Prompts = append(m.Prompts, prompt)
	m.MaxTokens = append(m.MaxTokens, maxTokens)

	if m.Err != nil {
		return "", m.Err
	}

	if len(m.Responses) == 0 {
		return "", nil
	}

	idx := m.Calls - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx], nil
}
