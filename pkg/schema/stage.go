package schema

// Stage represents one of the fixed SDLC lifecycle phases used as
// classification buckets.
type Stage string

const (
	StagePlanning       Stage = "Planning"
	StageDesign         Stage = "Design"
	StageImplementation Stage = "Implementation"
	StageTesting        Stage = "Testing"
	StageMaintenance    Stage = "Maintenance"
)

// Stages returns the fixed stage enumeration in canonical order.
// Tie-breaks and round-robin distribution both depend on this order,
// so it must never change between releases.
func Stages() []Stage {
	return []Stage{
		StagePlanning,
		StageDesign,
		StageImplementation,
		StageTesting,
		StageMaintenance,
	}
}

// StageCount is the number of lifecycle stages.
const StageCount = 5

// Length and truncation limits for classification candidates.
const (
	// RequirementMinLen is the minimum trimmed length (exclusive) for a
	// parser-extracted requirement line.
	RequirementMinLen = 3

	// SentenceMinLen is the minimum trimmed length (exclusive) for a
	// keyword-fallback sentence candidate.
	SentenceMinLen = 10

	// ClassifyTruncateLimit is the maximum source length sent with the
	// structured classification prompt.
	ClassifyTruncateLimit = 2000

	// ListingTruncateLimit is the maximum source length sent with the
	// simpler numbered-list prompt.
	ListingTruncateLimit = 1500
)
