package schema

import (
	"fmt"
	"strings"
)

// Validate checks the classification invariants: exactly the five fixed
// stage keys, and no empty or whitespace-only requirement strings.
func (c Classification) Validate() error {
	if len(c) != StageCount {
		return fmt.Errorf("classification must have exactly %d stage keys, got %d", StageCount, len(c))
	}

	for _, stage := range Stages() {
		reqs, ok := c[stage]
		if !ok {
			return fmt.Errorf("missing stage key: %s", stage)
		}
		for i, req := range reqs {
			if strings.TrimSpace(req) == "" {
				return fmt.Errorf("%s[%d]: requirement is empty or whitespace-only", stage, i)
			}
		}
	}

	return nil
}

// Validate checks that a classification record is well-formed before it
// is appended to the history log.
func (r *ClassificationRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record ID is required")
	}
	if r.DocumentID == "" {
		return fmt.Errorf("document ID is required")
	}
	switch r.Tier {
	case TierStructured, TierListing, TierKeyword, TierNone:
	default:
		return fmt.Errorf("unknown tier: %q", r.Tier)
	}
	if err := r.Stages.Validate(); err != nil {
		return fmt.Errorf("stages: %w", err)
	}
	return nil
}
