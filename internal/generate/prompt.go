package generate

import (
	"encoding/json"
	"fmt"
	"strings"

	"cvgen-backend/internal/sections"
)

const retryJobDescriptionLimit = 500

// shapeHints tells the model what each key's value should look like. Counts
// and separators here line up with the section validators.
var shapeHints = map[sections.ID]string{
	sections.Summary:        "a professional summary of 2-3 sentences (more than 30 characters)",
	sections.Skills:         "a single comma-separated string of at least 8 skills, most of them technical",
	sections.Experience:     "a paragraph describing relevant experience (more than 20 characters)",
	sections.Projects:       "2-3 projects separated by ' | ', each 'Name - one line description'",
	sections.Certifications: "2-3 certifications separated by ' | '",
	sections.Achievements:   "2-3 quantified achievements with numbers or percentages, one per line starting with '- '",
	sections.Traits:         "a single comma-separated string of at least 4 personality traits",
}

// retryHints narrows a failed section down to a minimal valid shape.
var retryHints = map[sections.ID]string{
	sections.Summary:        "two sentences summarizing the candidate",
	sections.Skills:         "exactly two comma-separated groups of three technical skills each",
	sections.Experience:     "exactly two sentences of relevant experience",
	sections.Projects:       "exactly two projects separated by ' | '",
	sections.Certifications: "exactly two certifications separated by ' | '",
	sections.Achievements:   "exactly two quantified achievements, one per line starting with '- '",
	sections.Traits:         "exactly two pairs of comma-separated personality traits (four traits total)",
}

// buildPrimaryPrompt embeds the full profile and job description and asks for
// one JSON object keyed by every section id.
func buildPrimaryPrompt(profile map[string]any, jobDescription string) string {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		profileJSON = []byte("{}")
	}

	var b strings.Builder
	b.WriteString("You are a CV writing engine. Respond with a single JSON object and nothing else. No markdown.\n\n")
	b.WriteString("Candidate profile (JSON):\n")
	b.Write(profileJSON)
	b.WriteString("\n\nTarget job description:\n")
	b.WriteString(jobDescription)
	b.WriteString("\n\nProduce one JSON object with exactly these string keys:\n")
	for _, id := range sections.All() {
		fmt.Fprintf(&b, "- %q: %s\n", string(id), shapeHints[id])
	}
	b.WriteString("\nEvery value must be a plain string. Tailor all content to the job description.")
	return b.String()
}

// buildRetryPrompt asks for exactly two items of one section type.
func buildRetryPrompt(id sections.ID, jobDescription string) string {
	jd := jobDescription
	if len(jd) > retryJobDescriptionLimit {
		jd = jd[:retryJobDescriptionLimit]
	}
	hint, ok := retryHints[id]
	if !ok {
		hint = fmt.Sprintf("exactly two items for the %s section", id)
	}
	return fmt.Sprintf(
		"Write %s for a CV, matching this job description. Respond with the plain text only, no JSON, no markdown.\n\nJob description:\n%s",
		hint, jd,
	)
}

// stripCodeFences removes leading/trailing markdown fence artifacts that some
// models wrap around JSON output.
func stripCodeFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
