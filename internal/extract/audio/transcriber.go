package audio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nkondratev/doctasks/internal/metrics"
	"github.com/nkondratev/doctasks/internal/speech"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

// ErrNoSpeechRecognized is returned when every chunk of the stream failed
// recognition. Individual chunk failures are tolerated, this is not.
var ErrNoSpeechRecognized = errors.New("no speech recognized in any part of the stream")

// chunkSpan is one bounded-duration slice of the stream, in input order.
type chunkSpan struct {
	Index    int
	Start    float64
	Duration float64
}

type Transcriber struct {
	proc            Processor
	rec             speech.Recognizer
	maxChunkSeconds float64
	requestDelay    time.Duration
	logger          *logger_i.Logger
}

func NewTranscriber(proc Processor, rec speech.Recognizer, maxChunkSeconds int, requestDelay time.Duration) *Transcriber {
	return &Transcriber{
		proc:            proc,
		rec:             rec,
		maxChunkSeconds: float64(maxChunkSeconds),
		requestDelay:    requestDelay,
		logger:          logger_i.NewLogger("AudioTranscriber"),
	}
}

// Transcribe converts an audio file to text. Streams within the chunk bound
// take the fast path and come back without chunk markers; longer streams are
// normalized, split into ceil(duration/bound) sequential chunks, recognized
// one by one with a fixed delay between calls, and stitched in input order.
func (t *Transcriber) Transcribe(ctx context.Context, path string) (string, error) {
	duration, err := t.proc.Duration(ctx, path)
	if err != nil {
		return "", fmt.Errorf("probe duration: %w", err)
	}
	if duration <= 0 {
		return "", errors.New("audio stream is empty or has zero duration")
	}

	workDir, err := os.MkdirTemp("", "doctasks-audio-*")
	if err != nil {
		return "", fmt.Errorf("chunk workdir: %w", err)
	}
	defer os.RemoveAll(workDir)

	normalized := filepath.Join(workDir, "normalized.wav")
	if err := t.proc.Normalize(ctx, path, normalized); err != nil {
		return "", err
	}

	if duration <= t.maxChunkSeconds {
		t.logger.Debug("Short stream, single unit", "duration", duration)
		text, err := t.rec.Recognize(ctx, normalized)
		if err != nil {
			if errors.Is(err, speech.ErrNoSpeech) {
				return "", ErrNoSpeechRecognized
			}
			return "", err
		}
		return text, nil
	}

	plan := splitPlan(duration, t.maxChunkSeconds)
	t.logger.Debug("Long stream, chunked", "duration", duration, "chunks", len(plan))

	var parts []string
	processed := 0
	for _, span := range plan {
		chunkPath := filepath.Join(workDir, fmt.Sprintf("chunk_%d.wav", span.Index))
		if err := t.proc.Cut(ctx, normalized, chunkPath, span.Start, span.Duration); err != nil {
			t.logger.Error("Chunk cut failed", "part", span.Index+1, "error", err)
			metrics.CountTranscriptionChunk("cut_failed")
		} else if text, err := t.rec.Recognize(ctx, chunkPath); err != nil {
			// failure stays local to this chunk, the rest continue
			t.logger.Error("Chunk recognition failed", "part", span.Index+1, "error", err)
			metrics.CountTranscriptionChunk("failed")
		} else {
			processed++
			metrics.CountTranscriptionChunk("ok")
			if strings.TrimSpace(text) != "" {
				parts = append(parts, fmt.Sprintf("[Part %d] %s", span.Index+1, text))
			}
		}

		// fixed pause between recognition calls to respect service rate limits
		if span.Index < len(plan)-1 {
			select {
			case <-time.After(t.requestDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	if len(parts) == 0 {
		return "", ErrNoSpeechRecognized
	}

	final := strings.Join(parts, "\n\n")
	return final + processingSummary(duration, processed, len(plan), len(final)), nil
}

// splitPlan partitions the stream into sequential non-overlapping chunks of
// at most max seconds. len(result) == ceil(total/max).
func splitPlan(total, max float64) []chunkSpan {
	count := int(math.Ceil(total / max))
	plan := make([]chunkSpan, 0, count)
	for i := 0; i < count; i++ {
		start := float64(i) * max
		duration := max
		if start+duration > total {
			duration = total - start
		}
		plan = append(plan, chunkSpan{Index: i, Start: start, Duration: duration})
	}
	return plan
}

func processingSummary(duration float64, processed, total, textLen int) string {
	var b strings.Builder
	b.WriteString("\n\n--- PROCESSING SUMMARY ---\n")
	fmt.Fprintf(&b, "Stream duration: %.1f seconds\n", duration)
	fmt.Fprintf(&b, "Chunks processed: %d/%d\n", processed, total)
	fmt.Fprintf(&b, "Text length: %d characters", textLen)
	return b.String()
}
