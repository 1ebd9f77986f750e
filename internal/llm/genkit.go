package llm

import (
	"context"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// RegisterClassifierModel registers the OpenRouter-backed classifier as a
// Genkit model provider, so flows built on Genkit can call the same
// collaborator the classification pipeline uses. The client handles
// transport, retries, and fence stripping; this layer only translates
// between Genkit's message shape and plain prompt text.
func RegisterClassifierModel(ctx context.Context, client *Client) (*genkit.Genkit, error) {
	g := genkit.Init(ctx)

	genkit.DefineModel(
		g,
		"openrouter/classifier",
		&ai.ModelOptions{
			Label: "SDLC requirement classifier (via OpenRouter)",
			Supports: &ai.ModelSupports{
				Multiturn:  false,
				SystemRole: false,
			},
		},
		func(ctx context.Context, req *ai.ModelRequest, cb ai.ModelStreamCallback) (*ai.ModelResponse, error) {
			text, err := client.GenerateText(ctx, flattenMessages(req), 0)
			if err != nil {
				return nil, err
			}
			return &ai.ModelResponse{
				Request: req,
				Message: &ai.Message{
					Content: []*ai.Part{
						ai.NewTextPart(text),
					},
				},
			}, nil
		},
	)

	return g, nil
}

// flattenMessages joins all text parts of the request into one prompt
// string. The classifier collaborator is single-turn; role structure is
// not preserved.
func flattenMessages(req *ai.ModelRequest) string {
	var sb strings.Builder
	for _, msg := range req.Messages {
		for _, part := range msg.Content {
			if part.Text != "" {
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String()
}
