package classify

import (
	"strings"

	"reqstage/pkg/schema"
)

// ExtractNumberedItems pulls a flat ordered list of requirement strings
// out of a "1. ... 2. ..." style response. Lines without a leading
// integer-dot prefix are ignored, as are items at or below the minimum
// requirement length.
func ExtractNumberedItems(response string) []string {
	var items []string

	for _, raw := range strings.Split(response, "\n") {
		line := strings.TrimSpace(raw)
		prefix := numberedLine.FindString(line)
		if prefix == "" {
			continue
		}

		item := strings.TrimSpace(line[len(prefix):])
		if len(item) > schema.RequirementMinLen {
			items = append(items, item)
		}
	}

	return items
}

// RedistributeRoundRobin appends the flat items cyclically across the
// stages in enumeration order: item[i] goes to stage[i mod 5]. Used when
// the model could produce a requirement list but not a per-stage one;
// the placement is arbitrary by construction, but stable.
func RedistributeRoundRobin(c schema.Classification, items []string) {
	stages := schema.Stages()
	for i, item := range items {
		c.Append(stages[i%len(stages)], item)
	}
}
