// Package generate orchestrates one content-generation request: a single
// aggregate AI call, per-section validation, and a single bounded retry per
// failed section. Any unresolved section fails the whole request; downstream
// assembly assumes every section holds real content.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cvgen-backend/internal/llm"
	"cvgen-backend/internal/sections"
	"cvgen-backend/internal/shared/telemetry"
)

const (
	primaryTemperature float32 = 0.9
	retryTemperature   float32 = 1.0
)

// SectionResult records how one section resolved.
type SectionResult struct {
	ID       sections.ID
	RawText  string
	Valid    bool
	Attempts int
}

// Output is the complete validated content for one request.
type Output struct {
	Content map[sections.ID]string
	Results []SectionResult
}

// Service drives the generation pipeline against an llm.Client.
type Service struct {
	LLM llm.Client
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Generate runs the full pipeline. It returns *RootError when the primary
// call fails or is unparseable, and *SectionError when a section never
// validates. Every section id in the fixed set must resolve for success.
func (s *Service) Generate(ctx context.Context, profile map[string]any, jobDescription string) (*Output, error) {
	raw, err := s.LLM.Generate(ctx, buildPrimaryPrompt(profile, jobDescription), llm.GenerateOptions{
		Temperature: primaryTemperature,
	})
	if err != nil {
		return nil, &RootError{Err: err}
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		return nil, &RootError{Err: fmt.Errorf("response is not valid JSON: %w", err)}
	}

	out := &Output{
		Content: make(map[sections.ID]string, len(sections.All())),
	}
	for _, id := range sections.All() {
		text := valueText(parsed, id)
		attempts := 1
		if !sections.Valid(id, text) {
			text = s.retrySection(ctx, id, jobDescription)
			attempts = 2
			if !sections.Valid(id, text) {
				out.Results = append(out.Results, SectionResult{ID: id, RawText: text, Valid: false, Attempts: attempts})
				return nil, &SectionError{Section: id}
			}
		}
		out.Content[id] = text
		out.Results = append(out.Results, SectionResult{ID: id, RawText: text, Valid: true, Attempts: attempts})
	}
	return out, nil
}

// retrySection issues the single bounded retry for a failed section. A
// transport failure here degrades to an empty candidate rather than escalating.
func (s *Service) retrySection(ctx context.Context, id sections.ID, jobDescription string) string {
	text, err := s.LLM.Generate(ctx, buildRetryPrompt(id, jobDescription), llm.GenerateOptions{
		Temperature: retryTemperature,
	})
	if err != nil {
		telemetry.Warn("generate.retry_call_failed", map[string]any{
			"section": string(id),
			"error":   err.Error(),
		})
		return ""
	}
	return stripCodeFences(text)
}

// valueText coerces the parsed JSON value for a section into text. Models
// occasionally return arrays despite the string instruction; those are joined
// with the separator the section's validator expects.
func valueText(parsed map[string]any, id sections.ID) string {
	val, ok := parsed[string(id)]
	if !ok {
		return ""
	}
	switch v := val.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		sep := ", "
		if id == sections.Projects || id == sections.Certifications {
			sep = " | "
		}
		return strings.Join(parts, sep)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
