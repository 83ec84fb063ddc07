package sections

import (
	"regexp"
	"strings"
)

// technicalKeywords is the closed list used to judge whether a skills token is
// technical. Matching is case-insensitive substring.
var technicalKeywords = []string{
	"python", "java", "javascript", "typescript", "sql", "react", "node",
	"golang", "docker", "kubernetes", "aws", "gcp", "azure", "html", "css",
	"linux", "git", "terraform", "rust", "php", "ruby", "kotlin", "swift",
	"spring", "django", "flask", "vue", "angular", "mongodb", "postgres",
	"redis", "kafka", "graphql", "rest",
}

var achievementVerbs = []string{
	"increased", "decreased", "reduced", "improved", "achieved", "delivered",
	"led", "launched", "grew", "saved", "boosted", "optimized", "won",
}

var (
	skillsSplitRe  = regexp.MustCompile(`[,|\n]`)
	listMarkerRe   = regexp.MustCompile(`(?m)^\s*[-*•]\s`)
	numberTokenRe  = regexp.MustCompile(`\d+%|\b\d+\b`)
	validatorTable = map[ID]func(string) bool{
		Summary:        validSummary,
		Skills:         validSkills,
		Experience:     validExperience,
		Projects:       validProjects,
		Certifications: validCertifications,
		Achievements:   validAchievements,
		Traits:         validTraits,
	}
)

// Valid reports whether text is acceptable for the given section. Unknown
// ids fall back to a non-empty check.
func Valid(id ID, text string) bool {
	if fn, ok := validatorTable[id]; ok {
		return fn(text)
	}
	return strings.TrimSpace(text) != ""
}

func validSummary(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed != "" && len(trimmed) > 30
}

func validSkills(text string) bool {
	tokens := splitTokens(text)
	if len(tokens) < 6 {
		return false
	}
	technical := 0
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		for _, kw := range technicalKeywords {
			if strings.Contains(lower, kw) {
				technical++
				break
			}
		}
	}
	return technical >= 3
}

func validExperience(text string) bool {
	return len(strings.TrimSpace(text)) > 20
}

func validProjects(text string) bool {
	if parts := splitNonEmpty(text, "|"); len(parts) >= 2 {
		return true
	}
	return listMarkerRe.MatchString(text)
}

func validCertifications(text string) bool {
	return strings.Contains(text, "|")
}

func validAchievements(text string) bool {
	if numberTokenRe.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	for _, verb := range achievementVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

func validTraits(text string) bool {
	return len(splitNonEmpty(text, ",")) >= 4
}

func splitTokens(text string) []string {
	var out []string
	for _, part := range skillsSplitRe.Split(text, -1) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitNonEmpty(text, sep string) []string {
	var out []string
	for _, part := range strings.Split(text, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
