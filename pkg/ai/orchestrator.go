package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Orchestrator holds the configured provider clients and funnels every
// generation through the same prompt → complete → normalize pipeline. Clients
// are registered at construction; an unconfigured provider simply has no
// entry and is rejected before any network call.
type Orchestrator struct {
	clients         map[string]Client
	defaultProvider string
	log             *zap.SugaredLogger
}

func NewOrchestrator(defaultProvider string, log *zap.SugaredLogger, clients ...Client) *Orchestrator {
	o := &Orchestrator{
		clients:         make(map[string]Client, len(clients)),
		defaultProvider: defaultProvider,
		log:             log,
	}
	for _, c := range clients {
		o.clients[c.Name()] = c
	}
	return o
}

// Resolve returns the effective provider for a request: the override when
// given, the configured default otherwise.
func (o *Orchestrator) Resolve(override string) string {
	if override != "" {
		return strings.ToLower(override)
	}
	return o.defaultProvider
}

// Configured reports whether the named provider has a registered client.
func (o *Orchestrator) Configured(provider string) bool {
	_, ok := o.clients[provider]
	return ok
}

// Generate runs one full generation: resolve the provider, dispatch, and
// normalize. A single failed attempt is a failed generation; there are no
// retries and no fallback to a second provider. All provider and format
// failures come back as *GenerationError.
func (o *Orchestrator) Generate(ctx context.Context, pctx PlanningContext, providerOverride string) (*GeneratedPlanning, string, error) {
	provider := o.Resolve(providerOverride)
	client, ok := o.clients[provider]
	if !ok {
		return nil, provider, fmt.Errorf("%q: %w", provider, ErrProviderNotConfigured)
	}

	prompt := BuildPrompt(pctx)
	if provider != ProviderOpenAI {
		prompt += jsonReminder
	}

	raw, err := client.Complete(ctx, prompt)
	if err != nil {
		o.log.Errorw("provider call failed", "provider", provider, "error", err)
		return nil, provider, &GenerationError{Provider: provider, Cause: err}
	}

	planning, err := ParseGeneratedPlanning(raw)
	if err != nil {
		// raw content stays in server logs, never in the response
		if fe, ok := err.(*FormatError); ok {
			o.log.Errorw("provider reply failed validation", "provider", provider, "reason", fe.Reason, "raw", fe.Raw)
		}
		return nil, provider, &GenerationError{Provider: provider, Cause: err}
	}
	return planning, provider, nil
}

// TestProvider sends a minimal prompt to verify connectivity. Used for
// configuration diagnostics only.
func (o *Orchestrator) TestProvider(ctx context.Context, provider string) bool {
	client, ok := o.clients[strings.ToLower(provider)]
	if !ok {
		return false
	}
	if err := client.Ping(ctx); err != nil {
		o.log.Warnw("provider self-test failed", "provider", provider, "error", err)
		return false
	}
	return true
}
