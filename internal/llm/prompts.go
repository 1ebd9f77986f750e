package llm

import (
	"fmt"
	"strings"

	"reqstage/pkg/schema"
)

// BuildStageClassificationPrompt creates the primary prompt: asks the
// model to sort the document's requirements under the five fixed stage
// headers. The response format requested here is what the structured
// response parser expects, but the parser never assumes the model
// complied.
func BuildStageClassificationPrompt(text string) string {
	var sb strings.Builder

	sb.WriteString("Analyze the following software document and classify its requirements into SDLC stages.\n\n")
	sb.WriteString("DOCUMENT:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nRespond with one section per stage, in this exact order:\n")

	for _, stage := range schema.Stages() {
		sb.WriteString(fmt.Sprintf("%s:\n", strings.ToUpper(string(stage))))
		sb.WriteString("- requirement\n")
	}

	sb.WriteString("\nRULES:\n")
	sb.WriteString("- One requirement per line, prefixed with \"- \"\n")
	sb.WriteString("- Every stage header must appear, even with no requirements under it\n")
	sb.WriteString("- Do not add commentary outside the sections\n")

	return sb.String()
}

// BuildRequirementListingPrompt creates the simpler second-tier prompt:
// a flat numbered list of requirements, no stage structure at all.
func BuildRequirementListingPrompt(text string) string {
	var sb strings.Builder

	sb.WriteString("List the software requirements found in the following document.\n\n")
	sb.WriteString("DOCUMENT:\n")
	sb.WriteString(text)
	sb.WriteString("\n\nRespond with a numbered list only:\n")
	sb.WriteString("1. first requirement\n")
	sb.WriteString("2. second requirement\n")
	sb.WriteString("\nNo headings, no commentary.")

	return sb.String()
}
