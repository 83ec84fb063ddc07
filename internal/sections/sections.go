// Package sections defines the closed set of document sections and the
// acceptance predicates applied to AI-generated text for each of them.
package sections

import "strings"

// ID identifies one document section.
type ID string

const (
	Summary        ID = "summary"
	Skills         ID = "skills"
	Experience     ID = "experience"
	Projects       ID = "projects"
	Certifications ID = "certifications"
	Achievements   ID = "achievements"
	Traits         ID = "traits"
)

// All returns every section in the fixed processing order.
func All() []ID {
	return []ID{Summary, Skills, Experience, Projects, Certifications, Achievements, Traits}
}

// Parse maps a caller-supplied section name to its ID, case-insensitively.
func Parse(raw string) (ID, bool) {
	switch ID(strings.ToLower(strings.TrimSpace(raw))) {
	case Summary:
		return Summary, true
	case Skills:
		return Skills, true
	case Experience:
		return Experience, true
	case Projects:
		return Projects, true
	case Certifications:
		return Certifications, true
	case Achievements:
		return Achievements, true
	case Traits:
		return Traits, true
	default:
		return "", false
	}
}
