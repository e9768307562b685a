package ai

import "context"

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

var Providers = []string{ProviderOpenAI, ProviderGemini, ProviderClaude}

func ValidProvider(name string) bool {
	for _, p := range Providers {
		if p == name {
			return true
		}
	}
	return false
}

// Client is the single capability all three vendors are reduced to: given a
// fully-formed prompt, return the raw text reply or fail. Vendor request
// envelopes and response shapes stay behind this interface.
type Client interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
	// Ping sends a minimal prompt to verify connectivity. Diagnostics only,
	// never part of the generation path.
	Ping(ctx context.Context) error
}
