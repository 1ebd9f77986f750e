package schema

import "time"

// Tier identifies which extraction strategy produced a classification.
type Tier string

const (
	// TierStructured is the primary tier: structured response parsing.
	TierStructured Tier = "structured"
	// TierListing is the second tier: numbered-list extraction with
	// round-robin redistribution.
	TierListing Tier = "listing"
	// TierKeyword is the last tier: keyword-based sentence classification
	// over the original source text.
	TierKeyword Tier = "keyword"
	// TierNone means every tier came back empty; the classification is
	// valid but holds no requirements.
	TierNone Tier = "none"
)

// ClassificationRecord is one persisted classification run.
type ClassificationRecord struct {
	ID         string         `yaml:"id" json:"id"`
	DocumentID string         `yaml:"document_id" json:"document_id"`
	Source     string         `yaml:"source" json:"source"`
	Tier       Tier           `yaml:"tier" json:"tier"`
	Stages     Classification `yaml:"stages" json:"stages"`
	CreatedAt  time.Time      `yaml:"created_at" json:"created_at"`
}
