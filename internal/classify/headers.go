package classify

import (
	"fmt"
	"strings"

	"reqstage/pkg/schema"
)

// headerSpellings is the declarative table of acceptable header forms for
// each stage. Generated models emit stage headers in wildly varied
// formatting; rather than scattering ad-hoc prefix checks, every accepted
// spelling is enumerated here so the variant list stays data-driven and
// testable in isolation.
var headerSpellings = buildHeaderSpellings()

func buildHeaderSpellings() map[schema.Stage][]string {
	table := make(map[schema.Stage][]string, schema.StageCount)
	for _, stage := range schema.Stages() {
		name := string(stage)
		upper := strings.ToUpper(name)
		table[stage] = []string{
			fmt.Sprintf("**%s**", name),  // bold markdown
			fmt.Sprintf("# %s", name),    // markdown headings, levels 1-3
			fmt.Sprintf("## %s", name),
			fmt.Sprintf("### %s", name),
			fmt.Sprintf("%s:", upper),    // uppercase with colon
			fmt.Sprintf("%s:", name),     // titlecase with colon
			upper,                        // bare uppercase
			name,                         // bare titlecase
		}
	}
	return table
}

// matchHeader reports whether the trimmed line is a stage header: it must
// start with, or exactly equal, one of the stage's accepted spellings,
// compared case-insensitively. Stages are checked in enumeration order.
func matchHeader(line string) (schema.Stage, bool) {
	lower := strings.ToLower(line)
	for _, stage := range schema.Stages() {
		for _, spelling := range headerSpellings[stage] {
			if strings.HasPrefix(lower, strings.ToLower(spelling)) {
				return stage, true
			}
		}
	}
	return "", false
}

// mentionsStage reports whether the line contains any stage name as a
// case-insensitive substring. Known imprecision: a legitimate requirement
// that mentions a stage in passing ("run load testing nightly") is treated
// as a stray header mention and dropped. Kept deliberately; the cost of a
// false requirement under the wrong stage outweighs the occasional miss.
func mentionsStage(line string) bool {
	lower := strings.ToLower(line)
	for _, stage := range schema.Stages() {
		if strings.Contains(lower, strings.ToLower(string(stage))) {
			return true
		}
	}
	return false
}
