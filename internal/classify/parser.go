package classify

import (
	"regexp"
	"strings"

	"reqstage/pkg/schema"
)

// bulletMarkers are the list markers stripped from requirement lines, in
// tie-break order.
var bulletMarkers = []string{"- ", "* ", "• ", "→ "}

// numberedLine matches a leading integer followed by ". ".
var numberedLine = regexp.MustCompile(`^\d+\. `)

// ResponseParser recovers a per-stage requirement classification from one
// free-text model response. It is pure: no state, no I/O, and identical
// input always yields identical output. Malformed or empty input is not an
// error; it simply yields an all-empty classification, which is the
// escalation signal the orchestrator acts on.
type ResponseParser struct{}

// NewResponseParser creates a new response parser.
func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// Parse scans the response line by line, tracking the current stage via
// header detection and collecting requirement lines under it. Lines seen
// before any header are ignored. A header line is never itself appended
// as a requirement.
func (p *ResponseParser) Parse(response string) schema.Classification {
	result := schema.NewClassification()

	var current schema.Stage
	haveStage := false

	for _, raw := range strings.Split(response, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if stage, ok := matchHeader(line); ok {
			current = stage
			haveStage = true
			continue
		}

		if !haveStage {
			continue
		}

		candidate, ok := extractRequirement(line)
		if !ok {
			continue
		}

		candidate = strings.TrimSpace(candidate)
		if len(candidate) > schema.RequirementMinLen {
			result.Append(current, candidate)
		}
	}

	return result
}

// extractRequirement pulls the requirement text out of one line. Bullet
// markers win over numbered prefixes; a plain line counts only when it
// does not mention a stage name (such lines are assumed to be stray
// header fragments rather than requirements).
func extractRequirement(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return line[len(marker):], true
		}
	}

	if prefix := numberedLine.FindString(line); prefix != "" {
		return line[len(prefix):], true
	}

	if !mentionsStage(line) {
		return line, true
	}

	return "", false
}
