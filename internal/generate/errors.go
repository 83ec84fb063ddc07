package generate

import (
	"fmt"

	"cvgen-backend/internal/sections"
)

// RootError marks failure of the primary aggregate AI call or an unparseable
// response. It aborts the whole request with no per-section retry.
type RootError struct {
	Err error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("primary generation failed: %v", e.Err)
}

func (e *RootError) Unwrap() error {
	return e.Err
}

// SectionError marks a section that never validated, even after its single
// retry.
type SectionError struct {
	Section sections.ID
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s failed validation after retry", e.Section)
}
