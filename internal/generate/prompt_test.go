package generate

import (
	"strings"
	"testing"

	"cvgen-backend/internal/sections"
)

func TestBuildPrimaryPromptNamesEverySection(t *testing.T) {
	prompt := buildPrimaryPrompt(map[string]any{"fullName": "Jane Doe"}, "Backend engineer role")
	for _, id := range sections.All() {
		if !strings.Contains(prompt, `"`+string(id)+`"`) {
			t.Fatalf("prompt missing key %q", id)
		}
	}
	if !strings.Contains(prompt, "Jane Doe") {
		t.Fatal("prompt missing profile content")
	}
	if !strings.Contains(prompt, "Backend engineer role") {
		t.Fatal("prompt missing job description")
	}
}

func TestBuildRetryPromptTruncatesJobDescription(t *testing.T) {
	long := strings.Repeat("x", 2000)
	prompt := buildRetryPrompt(sections.Skills, long)
	if strings.Contains(prompt, strings.Repeat("x", retryJobDescriptionLimit+1)) {
		t.Fatal("job description not truncated")
	}
	if !strings.Contains(prompt, strings.Repeat("x", retryJobDescriptionLimit)) {
		t.Fatal("truncated job description missing")
	}
	if !strings.Contains(prompt, "exactly two") {
		t.Fatalf("retry prompt lacks two-item instruction: %q", prompt)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  \n```json\n{\"a\":1}\n```\n ", want: `{"a":1}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.in); got != tt.want {
				t.Fatalf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
