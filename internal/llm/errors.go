package llm

import "fmt"

// LLMError represents an error from the text-generation collaborator.
// These propagate to the caller as-is: the classification fallback tiers
// exist for unparseable answers, never for failed calls.
type LLMError struct {
	// Type categorizes the error
	Type string

	// Message is a human-readable error message
	Message string

	// Code is the HTTP status code (if applicable)
	Code int

	// Err is the underlying error
	Err error
}

// Error types.
const (
	ErrorTypeNetwork = "network"
	ErrorTypeAPI     = "api"
	ErrorTypeTimeout = "timeout"
	ErrorTypeEmpty   = "empty"
)

// Error implements the error interface.
func (e *LLMError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("LLM %s error (code %d): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("LLM %s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *LLMError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the client may retry the call internally.
// Only transient transport conditions qualify.
func (e *LLMError) Retryable() bool {
	if e.Type == ErrorTypeNetwork || e.Type == ErrorTypeTimeout {
		return true
	}
	return e.Type == ErrorTypeAPI && (e.Code == 429 || e.Code >= 500)
}

// NewNetworkError creates a network error.
func NewNetworkError(err error) *LLMError {
	return &LLMError{
		Type:    ErrorTypeNetwork,
		Message: "Failed to connect to OpenRouter API. Check your network connection.",
		Err:     err,
	}
}

// NewAPIError creates an API error with status code.
func NewAPIError(code int, message string) *LLMError {
	return &LLMError{
		Type:    ErrorTypeAPI,
		Code:    code,
		Message: fmt.Sprintf("OpenRouter API error: %s", message),
	}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError() *LLMError {
	return &LLMError{
		Type:    ErrorTypeTimeout,
		Message: "Request timed out. The model may be under heavy load.",
	}
}

// NewEmptyResponseError creates an error for a response with no content.
func NewEmptyResponseError() *LLMError {
	return &LLMError{
		Type:    ErrorTypeEmpty,
		Message: "Model returned no content.",
	}
}
