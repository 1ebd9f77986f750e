package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterClassifierModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(openrouterContent("PLANNING:\n- Define scope\n"))
	}))
	defer server.Close()

	client, err := NewClient(&Config{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		DefaultModel: "test-model",
	})
	require.NoError(t, err)

	ctx := context.Background()

	g, err := RegisterClassifierModel(ctx, client)
	require.NoError(t, err)

	model := genkit.LookupModel(g, "openrouter/classifier")
	require.NotNil(t, model, "classifier model not registered")

	resp, err := model.Generate(ctx, &ai.ModelRequest{
		Messages: []*ai.Message{
			{
				Content: []*ai.Part{
					ai.NewTextPart("classify this document"),
				},
			},
		},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.NotEmpty(t, resp.Message.Content)
	assert.Equal(t, "PLANNING:\n- Define scope", resp.Message.Content[0].Text)
}

func TestFlattenMessages(t *testing.T) {
	req := &ai.ModelRequest{
		Messages: []*ai.Message{
			{Content: []*ai.Part{ai.NewTextPart("first"), ai.NewTextPart("second")}},
			{Content: []*ai.Part{ai.NewTextPart("third")}},
		},
	}

	assert.Equal(t, "first\nsecond\nthird", flattenMessages(req))
}
