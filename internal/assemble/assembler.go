// Package assemble renders validated section content into the final HTML
// document. All variation is driven by the request seed, so the same inputs
// and seed always produce the same markup.
package assemble

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"cvgen-backend/internal/sections"
	"cvgen-backend/internal/seedrand"
)

var markdown = goldmark.New()

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

type renderFunc func(text string, next func() float64) string

var templates = map[sections.ID]renderFunc{
	sections.Summary:        renderSummary,
	sections.Skills:         renderSkills,
	sections.Experience:     renderExperience,
	sections.Projects:       renderProjects,
	sections.Certifications: renderCertifications,
	sections.Achievements:   renderAchievements,
	sections.Traits:         renderTraits,
}

// Document renders the header plus every scoped section in caller order.
// Scope entries with no template or no content are skipped silently.
func Document(profile map[string]any, content map[sections.ID]string, scope []sections.ID, seed uint32) string {
	next := seedrand.New(seed)

	var b strings.Builder
	b.WriteString(`<article class="cv">`)
	b.WriteString(renderHeader(profile))
	for _, id := range scope {
		text, ok := content[id]
		if !ok {
			continue
		}
		render, ok := templates[id]
		if !ok {
			continue
		}
		b.WriteString(render(text, next))
	}
	b.WriteString(`</article>`)
	return b.String()
}

func renderHeader(profile map[string]any) string {
	name := profileString(profile, "fullName", "name")
	if name == "" {
		name = "Candidate"
	}
	var b strings.Builder
	b.WriteString(`<header class="cv-header"><h1>`)
	b.WriteString(escape(name))
	b.WriteString(`</h1>`)
	if headline := profileString(profile, "headline", "title"); headline != "" {
		b.WriteString(`<p class="headline">` + escape(headline) + `</p>`)
	}
	if email := profileString(profile, "email"); email != "" {
		b.WriteString(`<p class="contact">` + escape(email) + `</p>`)
	}
	b.WriteString(`</header>`)
	return b.String()
}

func renderSummary(text string, next func() float64) string {
	styled := stylize(text, next)
	return section("summary", "Summary", `<p>`+escape(styled)+`</p>`)
}

func renderSkills(text string, _ func() float64) string {
	var b strings.Builder
	for _, tok := range splitList(text, ",") {
		b.WriteString(`<span class="tag">` + escape(tok) + `</span>`)
	}
	return section("skills", "Skills", b.String())
}

func renderExperience(text string, next func() float64) string {
	styled := stylize(text, next)
	return section("experience", "Experience", `<p>`+escape(styled)+`</p>`)
}

func renderProjects(text string, _ func() float64) string {
	if hasListMarker(text) {
		return section("projects", "Projects", renderMarkdown(text))
	}
	return section("projects", "Projects", itemList(splitList(text, "|")))
}

func renderCertifications(text string, _ func() float64) string {
	if hasListMarker(text) {
		return section("certifications", "Certifications", renderMarkdown(text))
	}
	return section("certifications", "Certifications", itemList(splitList(text, "|")))
}

func renderAchievements(text string, next func() float64) string {
	styled := appendImpactMetrics(stylize(text, next), next)
	var items []string
	for _, line := range strings.Split(styled, "\n") {
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimPrefix(trimmed, "- ")
		trimmed = strings.TrimPrefix(trimmed, "* ")
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return section("achievements", "Achievements", itemList(items))
}

func renderTraits(text string, next func() float64) string {
	traits := seedrand.Shuffle(splitList(text, ","), next)
	var b strings.Builder
	for _, tok := range traits {
		b.WriteString(`<span class="trait">` + escape(tok) + `</span>`)
	}
	return section("traits", "Traits", b.String())
}

func section(class, title, body string) string {
	return fmt.Sprintf(`<section class="%s"><h2>%s</h2>%s</section>`, class, title, body)
}

func itemList(items []string) string {
	var b strings.Builder
	b.WriteString(`<ul>`)
	for _, item := range items {
		b.WriteString(`<li>` + escape(item) + `</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// renderMarkdown converts markdown list bodies to HTML. goldmark escapes
// special characters itself, so the body is passed through unescaped.
func renderMarkdown(text string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return `<p>` + escape(text) + `</p>`
	}
	return buf.String()
}

func escape(text string) string {
	return escaper.Replace(text)
}

func hasListMarker(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			return true
		}
	}
	return false
}

func splitList(text, sep string) []string {
	var out []string
	for _, part := range strings.Split(text, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func profileString(profile map[string]any, keys ...string) string {
	for _, key := range keys {
		if raw, ok := profile[key]; ok {
			if s, ok := raw.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
