package gemini

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/nkondratev/doctasks/internal/llm"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

type geminiProvider struct {
	client *genai.Client
	logger *logger_i.Logger
}

// NewProvider builds an llm.Provider over the Gemini API. Returns nil when
// the client cannot be created so main can decide whether to register it.
func NewProvider(ctx context.Context, apiKey string) llm.Provider {
	logger := logger_i.NewLogger("llm_gemini")

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return nil
	}
	logger.Info("Gemini client created")
	return &geminiProvider{client: c, logger: logger}
}

func (p *geminiProvider) Generate(ctx context.Context, model string, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		p.logger.Error("Generation call failed", "model", model, "error", err)
		return "", err
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New("model returned an empty response")
	}
	return text, nil
}
