package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reqstage/pkg/schema"
)

func TestHeaderSpellingsTableComplete(t *testing.T) {
	for _, stage := range schema.Stages() {
		spellings := headerSpellings[stage]
		// 8 accepted forms per stage: bold, 3 heading levels, 2 colon
		// forms, 2 bare forms.
		assert.Len(t, spellings, 8, "stage %s", stage)
	}
}

func TestMatchHeaderNonHeaders(t *testing.T) {
	for _, line := range []string{
		"- Define project scope",
		"The plan for next week",
		"*Planning*",
		"#### Planning",
		"",
	} {
		_, ok := matchHeader(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestMentionsStage(t *testing.T) {
	assert.True(t, mentionsStage("run load testing nightly"))
	assert.True(t, mentionsStage("the DESIGN review"))
	assert.False(t, mentionsStage("rotate credentials quarterly"))
}
