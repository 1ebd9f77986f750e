package classify

import (
	"regexp"
	"strings"

	"reqstage/pkg/schema"
)

// stageKeywords maps each stage to its lowercase trigger words. Static
// data, never mutated at runtime; safe for concurrent reads.
var stageKeywords = map[schema.Stage][]string{
	schema.StagePlanning: {
		"plan", "scope", "schedule", "stakeholder", "budget",
		"feasibility", "milestone", "objective", "estimate", "roadmap",
	},
	schema.StageDesign: {
		"design", "architecture", "wireframe", "interface", "prototype",
		"mockup", "diagram", "layout", "schema", "ui", "ux",
	},
	schema.StageImplementation: {
		"implement", "code", "develop", "build", "integrate",
		"module", "function", "api", "feature", "login",
	},
	schema.StageTesting: {
		"test", "verify", "validate", "qa", "bug",
		"regression", "coverage", "defect", "quality",
	},
	schema.StageMaintenance: {
		"maintain", "support", "update", "patch", "monitor",
		"upgrade", "deprecate", "backup", "fix", "refactor",
	},
}

// sentenceDelimiters splits text into sentence candidates on any run of
// '.', '!', or '?'.
var sentenceDelimiters = regexp.MustCompile(`[.!?]+`)

// FallbackClassifier assigns whole sentences to stages by keyword match
// count. It is the last extraction tier, used only when both the
// structured parse and the numbered-list redistribution came back empty.
// Fully deterministic; the only state is the static keyword table.
type FallbackClassifier struct{}

// NewFallbackClassifier creates a new keyword fallback classifier.
func NewFallbackClassifier() *FallbackClassifier {
	return &FallbackClassifier{}
}

// Classify splits the text into sentences and appends each one to the
// stage whose keywords occur most often in it. Sentences with a trimmed
// length of 10 characters or fewer are noise and dropped; sentences
// matching no keyword at all are assigned to no stage. Ties go to the
// stage that comes first in enumeration order, because a later stage only
// replaces the leader on a strictly greater count.
func (f *FallbackClassifier) Classify(text string) schema.Classification {
	result := schema.NewClassification()

	for _, candidate := range sentenceDelimiters.Split(text, -1) {
		sentence := strings.TrimSpace(candidate)
		if len(sentence) <= schema.SentenceMinLen {
			continue
		}

		lower := strings.ToLower(sentence)

		var best schema.Stage
		bestCount := 0
		for _, stage := range schema.Stages() {
			count := 0
			for _, keyword := range stageKeywords[stage] {
				count += strings.Count(lower, keyword)
			}
			if count > bestCount {
				best = stage
				bestCount = count
			}
		}

		if bestCount == 0 {
			continue
		}

		result.Append(best, sentence)
	}

	return result
}
