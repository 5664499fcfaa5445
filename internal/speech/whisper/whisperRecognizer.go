package whisper

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nkondratev/doctasks/internal/metrics"
	"github.com/nkondratev/doctasks/internal/speech"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

type recognizer struct {
	client   openai.Client
	language string
	logger   *logger_i.Logger
}

// NewRecognizer builds a speech.Recognizer over the OpenAI transcription API.
func NewRecognizer(apiKey string, language string, httpOptions ...option.RequestOption) speech.Recognizer {
	opts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, httpOptions...)
	return &recognizer{
		client:   openai.NewClient(opts...),
		language: language,
		logger:   logger_i.NewLogger("WhisperRecognizer"),
	}
}

func (r *recognizer) Recognize(ctx context.Context, wavPath string) (string, error) {
	file, err := os.Open(wavPath)
	if err != nil {
		return "", fmt.Errorf("open chunk: %w", err)
	}
	defer file.Close()

	started := time.Now()
	resp, err := r.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:     file,
		Model:    openai.AudioModelWhisper1,
		Language: openai.String(r.language),
	})
	metrics.CaptureDependencyLatency("speech", time.Since(started))
	if err != nil {
		r.logger.Error("Transcription request failed", "error", err)
		return "", fmt.Errorf("transcription request: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", speech.ErrNoSpeech
	}
	return text, nil
}
