package llm

import (
	"context"
	"errors"
)

// Client abstracts the external text-generation provider.
type Client interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// GenerateOptions carries per-call generation parameters.
type GenerateOptions struct {
	Temperature float32
}

// DefaultTemperature is used when callers pass a zero options value.
const DefaultTemperature float32 = 0.9

// ErrUpstream marks transport failures, non-success statuses, and responses
// with no extractable text. Callers branch on it with errors.Is.
var ErrUpstream = errors.New("upstream generation failure")
