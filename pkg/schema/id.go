package schema

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewRunID generates a new classification run ID in format RUN-{nanoid(10)}.
func NewRunID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("RUN-%s", id), nil
}

// NewDocumentID generates a new source document ID in format DOC-{nanoid(10)}.
func NewDocumentID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("DOC-%s", id), nil
}
