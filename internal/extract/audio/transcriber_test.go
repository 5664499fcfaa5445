package audio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/nkondratev/doctasks/internal/speech"
)

type mockProcessor struct {
	duration    float64
	durationErr error
	cutErr      func(start float64) error
	cutCalls    int
}

func (m *mockProcessor) Duration(ctx context.Context, path string) (float64, error) {
	return m.duration, m.durationErr
}

func (m *mockProcessor) Normalize(ctx context.Context, src, dst string) error {
	return nil
}

func (m *mockProcessor) Cut(ctx context.Context, src, dst string, start, duration float64) error {
	m.cutCalls++
	if m.cutErr != nil {
		return m.cutErr(start)
	}
	return nil
}

type mockRecognizer struct {
	recognizeFunc func(path string) (string, error)
	calls         []string
}

func (m *mockRecognizer) Recognize(ctx context.Context, wavPath string) (string, error) {
	m.calls = append(m.calls, wavPath)
	if m.recognizeFunc != nil {
		return m.recognizeFunc(wavPath)
	}
	return "распознанный текст", nil
}

func TestSplitPlan(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		max   float64
	}{
		{"exact multiple", 100, 50},
		{"with remainder", 125, 50},
		{"single chunk", 30, 50},
		{"tiny remainder", 100.5, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := splitPlan(tt.total, tt.max)

			wantCount := int(math.Ceil(tt.total / tt.max))
			if len(plan) != wantCount {
				t.Fatalf("expected %d chunks, got %d", wantCount, len(plan))
			}

			var covered float64
			for i, span := range plan {
				if span.Index != i {
					t.Errorf("chunk %d has index %d", i, span.Index)
				}
				if span.Start != covered {
					t.Errorf("chunk %d starts at %f, expected %f", i, span.Start, covered)
				}
				if span.Duration <= 0 || span.Duration > tt.max {
					t.Errorf("chunk %d has duration %f outside (0, %f]", i, span.Duration, tt.max)
				}
				covered += span.Duration
			}
			if covered != tt.total {
				t.Errorf("chunks cover %f of %f seconds", covered, tt.total)
			}
		})
	}
}

func TestTranscribeShortStream(t *testing.T) {
	proc := &mockProcessor{duration: 30}
	rec := &mockRecognizer{}
	transcriber := NewTranscriber(proc, rec, 50, 0)

	text, err := transcriber.Transcribe(context.Background(), "meeting.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "распознанный текст" {
		t.Errorf("unexpected text: %q", text)
	}
	if strings.Contains(text, "[Part") {
		t.Error("short stream must not carry chunk markers")
	}
	if len(rec.calls) != 1 {
		t.Errorf("expected one recognition call, got %d", len(rec.calls))
	}
}

func TestTranscribeChunksInOrder(t *testing.T) {
	proc := &mockProcessor{duration: 125}
	rec := &mockRecognizer{}
	rec.recognizeFunc = func(path string) (string, error) {
		return fmt.Sprintf("текст из %s", path), nil
	}
	transcriber := NewTranscriber(proc, rec, 50, 0)

	text, err := transcriber.Transcribe(context.Background(), "meeting.mp3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for part := 1; part <= 3; part++ {
		if !strings.Contains(text, fmt.Sprintf("[Part %d]", part)) {
			t.Errorf("missing [Part %d] marker:\n%s", part, text)
		}
	}
	if strings.Index(text, "[Part 1]") > strings.Index(text, "[Part 2]") {
		t.Error("parts must appear in stream order")
	}
	if !strings.Contains(text, "--- PROCESSING SUMMARY ---") {
		t.Error("chunked result must end with the processing summary")
	}
	if !strings.Contains(text, "Chunks processed: 3/3") {
		t.Errorf("unexpected summary:\n%s", text)
	}
}

func TestTranscribeIsolatesChunkFailures(t *testing.T) {
	proc := &mockProcessor{duration: 150}
	rec := &mockRecognizer{}
	rec.recognizeFunc = func(path string) (string, error) {
		if strings.Contains(path, "chunk_1") {
			return "", errors.New("service unavailable")
		}
		return "текст", nil
	}
	transcriber := NewTranscriber(proc, rec, 50, 0)

	text, err := transcriber.Transcribe(context.Background(), "meeting.mp3")
	if err != nil {
		t.Fatalf("one failed chunk must not fail the stream: %v", err)
	}
	if strings.Contains(text, "[Part 2]") {
		t.Error("failed chunk must not contribute text")
	}
	if !strings.Contains(text, "[Part 1]") || !strings.Contains(text, "[Part 3]") {
		t.Errorf("surviving chunks must be present:\n%s", text)
	}
	if !strings.Contains(text, "Chunks processed: 2/3") {
		t.Errorf("summary must count only processed chunks:\n%s", text)
	}
}

func TestTranscribeAllChunksFail(t *testing.T) {
	proc := &mockProcessor{duration: 150}
	rec := &mockRecognizer{}
	rec.recognizeFunc = func(path string) (string, error) {
		return "", errors.New("service unavailable")
	}
	transcriber := NewTranscriber(proc, rec, 50, 0)

	_, err := transcriber.Transcribe(context.Background(), "meeting.mp3")
	if !errors.Is(err, ErrNoSpeechRecognized) {
		t.Errorf("expected ErrNoSpeechRecognized, got %v", err)
	}
}

func TestTranscribeShortStreamNoSpeech(t *testing.T) {
	proc := &mockProcessor{duration: 10}
	rec := &mockRecognizer{}
	rec.recognizeFunc = func(path string) (string, error) {
		return "", speech.ErrNoSpeech
	}
	transcriber := NewTranscriber(proc, rec, 50, 0)

	_, err := transcriber.Transcribe(context.Background(), "meeting.mp3")
	if !errors.Is(err, ErrNoSpeechRecognized) {
		t.Errorf("expected ErrNoSpeechRecognized, got %v", err)
	}
}

func TestTranscribeZeroDuration(t *testing.T) {
	proc := &mockProcessor{duration: 0}
	transcriber := NewTranscriber(proc, &mockRecognizer{}, 50, 0)

	_, err := transcriber.Transcribe(context.Background(), "meeting.mp3")
	if err == nil {
		t.Fatal("expected an error for an empty stream")
	}
}
