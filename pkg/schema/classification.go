package schema

// Classification maps every lifecycle stage to an ordered list of
// requirement strings. Every stage key is always present, even when its
// list is empty. Order within a list reflects extraction order, not
// importance.
type Classification map[Stage][]string

// NewClassification creates a classification with all stage keys present
// and empty requirement lists.
func NewClassification() Classification {
	c := make(Classification, StageCount)
	for _, stage := range Stages() {
		c[stage] = []string{}
	}
	return c
}

// Append adds a requirement to the given stage's list.
func (c Classification) Append(stage Stage, requirement string) {
	c[stage] = append(c[stage], requirement)
}

// Total returns the number of requirements across all stages. Emptiness
// is defined by this sum, not by key presence.
func (c Classification) Total() int {
	total := 0
	for _, stage := range Stages() {
		total += len(c[stage])
	}
	return total
}

// IsEmpty reports whether no stage holds any requirement. An all-empty
// classification is the escalation trigger between extraction tiers.
func (c Classification) IsEmpty() bool {
	return c.Total() == 0
}

// Clone creates a deep copy of the classification.
func (c Classification) Clone() Classification {
	clone := make(Classification, StageCount)
	for _, stage := range Stages() {
		reqs := make([]string, len(c[stage]))
		copy(reqs, c[stage])
		clone[stage] = reqs
	}
	return clone
}
