package classify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqstage/internal/llm"
	"reqstage/pkg/schema"
)

const structuredResponse = `PLANNING:
- Define project scope
DESIGN:
- Create UI wireframes
`

const listingResponse = `1. Gather stakeholder approvals
2. Draw data model
3. Add payment endpoint
4. Write smoke checks
5. Rotate secrets quarterly
6. Publish release notes
7. Archive old records
`

const unusableResponse = "Sorry, I am unable to answer that."

func TestOrchestratorStructuredTier(t *testing.T) {
	mock := &llm.MockModel{Responses: []string{structuredResponse}}
	orch := NewOrchestrator()

	result, tier, err := orch.Classify(context.Background(), "raw document text", mock.GenerateText)
	require.NoError(t, err)

	assert.Equal(t, schema.TierStructured, tier)
	assert.Equal(t, []string{"Define project scope"}, result[schema.StagePlanning])
	assert.Equal(t, []string{"Create UI wireframes"}, result[schema.StageDesign])

	// Tier 1 succeeded: the listing tier is never invoked.
	assert.Equal(t, 1, mock.Calls)
}

func TestOrchestratorListingTier(t *testing.T) {
	mock := &llm.MockModel{Responses: []string{unusableResponse, listingResponse}}
	orch := NewOrchestrator()

	result, tier, err := orch.Classify(context.Background(), "raw document text", mock.GenerateText)
	require.NoError(t, err)

	assert.Equal(t, schema.TierListing, tier)
	assert.Equal(t, 2, mock.Calls)

	// Round-robin in enumeration order: items 0 and 5 share Planning.
	assert.Equal(t, []string{"Gather stakeholder approvals", "Publish release notes"}, result[schema.StagePlanning])
	assert.Equal(t, []string{"Draw data model", "Archive old records"}, result[schema.StageDesign])
	assert.Equal(t, []string{"Add payment endpoint"}, result[schema.StageImplementation])
	assert.Equal(t, []string{"Write smoke checks"}, result[schema.StageTesting])
	assert.Equal(t, []string{"Rotate secrets quarterly"}, result[schema.StageMaintenance])
}

func TestOrchestratorKeywordTier(t *testing.T) {
	mock := &llm.MockModel{Responses: []string{unusableResponse, unusableResponse}}
	orch := NewOrchestrator()

	rawText := "The team must validate the bug reports weekly. Monitor the servers and apply patches regularly."
	result, tier, err := orch.Classify(context.Background(), rawText, mock.GenerateText)
	require.NoError(t, err)

	assert.Equal(t, schema.TierKeyword, tier)
	assert.Equal(t, 2, mock.Calls)
	assert.Len(t, result[schema.StageTesting], 1)
	assert.Len(t, result[schema.StageMaintenance], 1)
}

func TestOrchestratorAllTiersEmpty(t *testing.T) {
	mock := &llm.MockModel{Responses: []string{unusableResponse, unusableResponse}}
	orch := NewOrchestrator()

	result, tier, err := orch.Classify(context.Background(), "nothing relevant here at all", mock.GenerateText)
	require.NoError(t, err)

	assert.Equal(t, schema.TierNone, tier)
	assert.True(t, result.IsEmpty())
	require.NoError(t, result.Validate())
}

func TestOrchestratorPropagatesModelFailure(t *testing.T) {
	callErr := llm.NewAPIError(401, "invalid key")
	mock := &llm.MockModel{Err: callErr}
	orch := NewOrchestrator()

	// The raw text would classify fine via keywords; a failed call must
	// never degrade into a keyword fallback.
	_, _, err := orch.Classify(context.Background(), "Validate the regression coverage daily.", mock.GenerateText)

	require.Error(t, err)
	var llmErr *llm.LLMError
	assert.True(t, errors.As(err, &llmErr))
	assert.Equal(t, 1, mock.Calls)
}

func TestOrchestratorPropagatesListingFailure(t *testing.T) {
	calls := 0
	call := func(ctx context.Context, prompt string, maxTokens int) (string, error) {
		calls++
		if calls == 1 {
			return unusableResponse, nil
		}
		return "", llm.NewNetworkError(errors.New("connection reset"))
	}

	_, _, err := NewOrchestrator().Classify(context.Background(), "Validate the regression coverage daily.", call)

	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestOrchestratorTruncatesPrompts(t *testing.T) {
	long := strings.Repeat("a", 5000)
	mock := &llm.MockModel{Responses: []string{structuredResponse}}

	_, _, err := NewOrchestrator().Classify(context.Background(), long, mock.GenerateText)
	require.NoError(t, err)

	require.Len(t, mock.Prompts, 1)
	assert.Contains(t, mock.Prompts[0], strings.Repeat("a", schema.ClassifyTruncateLimit)+"...")
	assert.NotContains(t, mock.Prompts[0], strings.Repeat("a", schema.ClassifyTruncateLimit+1))
}

func TestClassifyRequirementsContract(t *testing.T) {
	mock := &llm.MockModel{Responses: []string{structuredResponse}}

	result, err := ClassifyRequirements(context.Background(), "raw document text", mock.GenerateText)
	require.NoError(t, err)

	require.NoError(t, result.Validate())
	assert.Equal(t, 2, result.Total())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"under limit", "short", 10, "short"},
		{"at limit", "exact", 5, "exact"},
		{"over limit", "overflowing", 8, "overflow..."},
		{"multibyte safe", "héllo wörld", 7, "héllo w..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.text, tt.limit))
		})
	}
}
