package core

import "fmt"

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CollaboratorError wraps a failure from an external collaborator (the
// text-generation model or the document extractor). Never retried here;
// callers decide whether to retry.
type CollaboratorError struct {
	Collaborator string
	Message      string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator %s: %s", e.Collaborator, e.Message)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
