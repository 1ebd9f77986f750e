package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqstage/pkg/schema"
)

func TestExtractNumberedItems(t *testing.T) {
	response := `Here are the requirements:
1. Define project scope
2. Create UI wireframes
Some commentary in between.
3. Support user login
4. ok
5. Write regression suite
`

	items := ExtractNumberedItems(response)

	// Commentary and the too-short item are skipped.
	assert.Equal(t, []string{
		"Define project scope",
		"Create UI wireframes",
		"Support user login",
		"Write regression suite",
	}, items)
}

func TestExtractNumberedItemsNoMatches(t *testing.T) {
	assert.Empty(t, ExtractNumberedItems("no list here\njust prose\n"))
	assert.Empty(t, ExtractNumberedItems(""))
}

func TestRedistributeRoundRobin(t *testing.T) {
	items := make([]string, 7)
	for i := range items {
		items[i] = fmt.Sprintf("Requirement number %d", i)
	}

	c := schema.NewClassification()
	RedistributeRoundRobin(c, items)

	require.Equal(t, 7, c.Total())

	// item[i] lands on stage[i mod 5]: indexes 0 and 5 share Planning,
	// 1 and 6 share Design.
	assert.Equal(t, []string{"Requirement number 0", "Requirement number 5"}, c[schema.StagePlanning])
	assert.Equal(t, []string{"Requirement number 1", "Requirement number 6"}, c[schema.StageDesign])
	assert.Equal(t, []string{"Requirement number 2"}, c[schema.StageImplementation])
	assert.Equal(t, []string{"Requirement number 3"}, c[schema.StageTesting])
	assert.Equal(t, []string{"Requirement number 4"}, c[schema.StageMaintenance])
}

func TestRedistributeRoundRobinEmpty(t *testing.T) {
	c := schema.NewClassification()
	RedistributeRoundRobin(c, nil)

	assert.True(t, c.IsEmpty())
	require.NoError(t, c.Validate())
}
