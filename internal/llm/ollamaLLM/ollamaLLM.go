package ollamaLLM

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/nkondratev/doctasks/internal/config"
	"github.com/nkondratev/doctasks/internal/llm"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

type ollamaProvider struct {
	client *api.Client
	logger *logger_i.Logger
}

// NewProvider builds an llm.Provider over a local ollama-compatible server.
func NewProvider(host string, httpClient *http.Client) (llm.Provider, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("ollama host %q: %w", host, err)
	}
	return &ollamaProvider{
		client: api.NewClient(base, httpClient),
		logger: logger_i.NewLogger("llm_ollama"),
	}, nil
}

func (p *ollamaProvider) Generate(ctx context.Context, model string, prompt string) (string, error) {
	p.logger.Debug("Calling model", "model", model, "promptLength", len(prompt))

	stream := false
	req := &api.GenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": config.ModelTemperature,
			"top_p":       config.ModelTopP,
			"num_predict": config.ModelNumPredict,
		},
	}

	var generated strings.Builder
	err := p.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		generated.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		p.logger.Error("Generation call failed", "model", model, "error", err)
		return "", fmt.Errorf("generation call: %w", err)
	}

	text := strings.TrimSpace(generated.String())
	if text == "" {
		p.logger.Warn("Model returned an empty response", "model", model)
		return "", errors.New("model returned an empty response")
	}
	p.logger.Debug("Generation finished", "responseLength", len(text))
	return text, nil
}
