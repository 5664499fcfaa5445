package extract

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/nkondratev/doctasks/internal/domain/documentModel"
)

type mockTranscriber struct {
	transcribeFunc func(ctx context.Context, path string) (string, error)
	calls          int
}

func (m *mockTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	m.calls++
	if m.transcribeFunc != nil {
		return m.transcribeFunc(ctx, path)
	}
	return "транскрипция", nil
}

type mockImageReader struct {
	available []string
	text      string
	err       error
	languages [][]string
}

func (m *mockImageReader) AvailableLanguages() ([]string, error) {
	return m.available, nil
}

func (m *mockImageReader) Recognize(content []byte, languages []string) (string, error) {
	m.languages = append(m.languages, languages)
	return m.text, m.err
}

func TestExtractPlainReadable(t *testing.T) {
	extractor := NewExtractor(nil, nil)

	tests := []struct {
		name      string
		mediaType documentModel.MediaType
	}{
		{"plain text", documentModel.PlainText},
		{"markdown", documentModel.Markdown},
		{"x-markdown", documentModel.MarkdownX},
		{"html", documentModel.HTML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := documentModel.RawDocument{
				Content:   []byte("привет, мир"),
				MediaType: tt.mediaType,
				Filename:  "notes.txt",
			}
			text, err := extractor.Extract(context.Background(), doc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if text != "привет, мир" {
				t.Errorf("plain content must pass through unchanged, got %q", text)
			}
		})
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	extractor := NewExtractor(nil, nil)

	doc := documentModel.RawDocument{
		Content:   []byte{0x1, 0x2},
		MediaType: documentModel.MediaType("application/zip"),
		Filename:  "archive.zip",
	}
	_, err := extractor.Extract(context.Background(), doc)
	if err == nil {
		t.Fatal("expected an error")
	}

	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("expected ExtractionError, got %T", err)
	}
	if extractionErr.Kind != KindUnsupportedType {
		t.Errorf("expected %s, got %s", KindUnsupportedType, extractionErr.Kind)
	}
}

func TestExtractAudioDelegates(t *testing.T) {
	transcriber := &mockTranscriber{}
	extractor := NewExtractor(transcriber, nil)

	doc := documentModel.RawDocument{
		Content:   []byte("fake audio bytes"),
		MediaType: documentModel.AudioMP3,
		Filename:  "standup.mp3",
	}
	text, err := extractor.Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "транскрипция" {
		t.Errorf("unexpected text: %q", text)
	}
	if transcriber.calls != 1 {
		t.Errorf("expected one transcribe call, got %d", transcriber.calls)
	}
}

func TestExtractAudioWithoutTranscriber(t *testing.T) {
	extractor := NewExtractor(nil, nil)

	doc := documentModel.RawDocument{
		Content:   []byte("fake audio bytes"),
		MediaType: documentModel.AudioWAV,
		Filename:  "standup.wav",
	}
	_, err := extractor.Extract(context.Background(), doc)

	var extractionErr *ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if extractionErr.Kind != KindTranscribe {
		t.Errorf("expected %s, got %s", KindTranscribe, extractionErr.Kind)
	}
}

func TestExtractImageUsesOCR(t *testing.T) {
	ocr := &mockImageReader{available: []string{"eng", "rus"}, text: "текст со скриншота"}
	extractor := NewExtractor(nil, ocr)

	doc := documentModel.RawDocument{
		Content:   []byte("fake png bytes"),
		MediaType: documentModel.ImagePNG,
		Filename:  "board.png",
	}
	text, err := extractor.Extract(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "текст со скриншота" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestPickLanguages(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		want      []string
	}{
		{"both installed", []string{"deu", "eng", "rus"}, []string{"rus", "eng"}},
		{"english only", []string{"eng", "deu"}, []string{"eng"}},
		{"neither installed", []string{"deu", "fra"}, nil},
		{"nothing installed", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickLanguages(tt.available); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("pickLanguages(%v) = %v, want %v", tt.available, got, tt.want)
			}
		})
	}
}

func TestAudioSuffix(t *testing.T) {
	tests := []struct {
		filename  string
		mediaType documentModel.MediaType
		want      string
	}{
		{"standup.MP3", documentModel.AudioMP3, ".mp3"},
		{"call.ogg", documentModel.AudioOGG, ".ogg"},
		{"noname", documentModel.AudioWAV, ".wav"},
		{"noname", documentModel.AudioM4A, ".m4a"},
		{"noname", documentModel.AudioMPEG, ".mp3"},
	}
	for _, tt := range tests {
		doc := documentModel.RawDocument{Filename: tt.filename, MediaType: tt.mediaType}
		if got := audioSuffix(doc); got != tt.want {
			t.Errorf("audioSuffix(%q, %s) = %q, want %q", tt.filename, tt.mediaType, got, tt.want)
		}
	}
}
