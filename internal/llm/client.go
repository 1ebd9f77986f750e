package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// languageTag matches a fence language tag like "markdown" or "text".
var languageTag = regexp.MustCompile(`^[a-z]+$`)

// Client is the LLM client for interacting with OpenRouter. It is the
// text-generation collaborator behind the classification pipeline's
// ModelCall boundary; the pipeline itself never sees HTTP.
type Client struct {
	config *Config
	http   *http.Client
	models map[string]ModelConfig
}

// NewClient creates a new LLM client.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config.SetDefaults()

	return &Client{
		config: config,
		http: &http.Client{
			Timeout: config.Timeout,
		},
		models: DefaultModels(),
	}, nil
}

// OpenRouterRequest represents a request to OpenRouter (OpenAI-compatible).
type OpenRouterRequest struct {
	Model     string          `json:"model"`
	Messages  []OpenRouterMsg `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

// OpenRouterMsg represents a message in the conversation.
type OpenRouterMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenRouterResponse represents a response from OpenRouter.
type OpenRouterResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// GenerateText sends the prompt to the default model and returns the raw
// response text. maxTokens is the maximum-response-length hint; zero
// means the configured default. Transient transport failures (network,
// 429, 5xx) are retried up to MaxRetries times inside the collaborator;
// everything else propagates immediately. The returned text is stripped
// of markdown code fences but otherwise untouched - cleaning up the
// content is the parser's job.
func (c *Client) GenerateText(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = c.config.MaxTokens
	}

	var lastErr error
	for attempt := 1; attempt <= c.config.MaxRetries; attempt++ {
		slog.Info("LLM generation attempt",
			"attempt", attempt,
			"model", c.config.DefaultModel,
			"prompt_length", len(prompt),
			"max_tokens", maxTokens,
		)

		text, err := c.callOpenRouter(ctx, prompt, maxTokens)
		if err == nil {
			slog.Info("LLM generation succeeded",
				"attempt", attempt,
				"response_length", len(text),
			)
			return text, nil
		}

		lastErr = err

		var llmErr *LLMError
		if errors.As(err, &llmErr) && llmErr.Retryable() && attempt < c.config.MaxRetries {
			slog.Warn("LLM call failed, retrying",
				"attempt", attempt,
				"error", err.Error(),
			)
			continue
		}

		return "", err
	}

	return "", lastErr
}

// callOpenRouter makes a single HTTP call to the OpenRouter API.
func (c *Client) callOpenRouter(ctx context.Context, prompt string, maxTokens int) (string, error) {
	reqBody := OpenRouterRequest{
		Model: c.config.DefaultModel,
		Messages: []OpenRouterMsg{
			{Role: "user", Content: prompt},
		},
		MaxTokens: maxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		slog.Error("OpenRouter HTTP request failed",
			"error", err.Error(),
			"duration", duration,
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return "", NewTimeoutError()
		}
		return "", NewNetworkError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	slog.Info("OpenRouter HTTP request completed",
		"status_code", resp.StatusCode,
		"duration", duration,
	)

	if resp.StatusCode != http.StatusOK {
		var errBody bytes.Buffer
		if _, err := errBody.ReadFrom(resp.Body); err != nil {
			slog.Warn("Failed to read error response body", "error", err)
			return "", NewAPIError(resp.StatusCode, fmt.Sprintf("status %d (failed to read error body)", resp.StatusCode))
		}
		return "", NewAPIError(resp.StatusCode, errBody.String())
	}

	var openrouterResp OpenRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&openrouterResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if openrouterResp.Error != nil {
		return "", NewAPIError(0, openrouterResp.Error.Message)
	}

	if len(openrouterResp.Choices) == 0 {
		return "", NewAPIError(0, "no choices in response")
	}

	content := cleanMarkdownCodeBlocks(openrouterResp.Choices[0].Message.Content)
	if content == "" {
		return "", NewEmptyResponseError()
	}

	return content, nil
}

// cleanMarkdownCodeBlocks removes markdown code block wrappers
// Some models wrap their whole answer in ```...``` even when asked for
// plain text.
func cleanMarkdownCodeBlocks(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		// Drop a language tag left on the first line, e.g. "markdown"
		if idx := strings.Index(content, "\n"); idx >= 0 {
			if languageTag.MatchString(strings.TrimSpace(content[:idx])) {
				content = content[idx+1:]
			}
		}
		content = strings.TrimSpace(content)
	}

	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	return content
}
