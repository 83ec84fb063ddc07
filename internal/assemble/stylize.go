package assemble

import (
	"fmt"
	"regexp"
	"strings"
)

// synonymPairs is the fixed substitution table for the seeded stylistic pass.
// One draw decides each pair, so a stored seed replays the exact wording.
var synonymPairs = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bdeveloped\b`), "engineered"},
	{regexp.MustCompile(`(?i)\bmade\b`), "built"},
	{regexp.MustCompile(`(?i)\bhelped\b`), "drove"},
	{regexp.MustCompile(`(?i)\bused\b`), "leveraged"},
	{regexp.MustCompile(`(?i)\bimproved\b`), "enhanced"},
	{regexp.MustCompile(`(?i)\bmanaged\b`), "led"},
	{regexp.MustCompile(`(?i)\bworked on\b`), "delivered"},
}

const impactProbability = 0.3

// stylize applies the per-pair synonym substitution, consuming exactly one
// draw per pair regardless of whether the word occurs.
func stylize(text string, next func() float64) string {
	out := text
	for _, p := range synonymPairs {
		draw := next()
		if draw < 0.5 {
			out = p.re.ReplaceAllString(out, p.replacement)
		}
	}
	return out
}

// appendImpactMetrics appends a parenthetical percentage to achievement
// bullets that carry no percent sign already.
func appendImpactMetrics(text string, next func() float64) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Contains(trimmed, "%") {
			continue
		}
		if next() < impactProbability {
			pct := 5 + int(next()*46)
			lines[i] = line + fmt.Sprintf(" (+%d%% impact)", pct)
		}
	}
	return strings.Join(lines, "\n")
}
