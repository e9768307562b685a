package ai

import (
	"errors"
	"fmt"
)

// ErrProviderNotConfigured means the resolved provider has no credential.
// Surfaced before any network call.
var ErrProviderNotConfigured = errors.New("ai provider is not configured")

// GenerationError is the one failure shape the orchestrator exposes. Provider
// transport errors and format errors both end up here so callers never see
// vendor-specific error shapes.
type GenerationError struct {
	Provider string
	Cause    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate planning with %s: %v", e.Provider, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// FormatError reports a provider reply that failed JSON parsing or schema
// validation. Raw holds the offending content for server-side logging; Error()
// deliberately leaves it out so it is never echoed to a caller.
type FormatError struct {
	Reason string
	Raw    string
}

func (e *FormatError) Error() string {
	return "invalid ai response format: " + e.Reason
}
