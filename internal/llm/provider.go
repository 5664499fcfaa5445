package llm

import (
	"context"
	"strings"
)

// Provider is the opaque single-shot text-generation capability.
type Provider interface {
	Generate(ctx context.Context, model string, prompt string) (string, error)
}

// Registry routes a model identifier to a provider by name prefix, falling
// back to the default provider for everything unrecognized.
type Registry struct {
	byPrefix map[string]Provider
	fallback Provider
}

func NewRegistry(fallback Provider) *Registry {
	return &Registry{byPrefix: make(map[string]Provider), fallback: fallback}
}

func (r *Registry) Register(prefix string, p Provider) {
	r.byPrefix[prefix] = p
}

func (r *Registry) Generate(ctx context.Context, model string, prompt string) (string, error) {
	for prefix, p := range r.byPrefix {
		if strings.HasPrefix(model, prefix) {
			return p.Generate(ctx, model, prompt)
		}
	}
	return r.fallback.Generate(ctx, model, prompt)
}
