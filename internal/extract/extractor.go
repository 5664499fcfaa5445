package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nkondratev/doctasks/internal/domain/documentModel"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

type ErrorKind string

const (
	KindUnsupportedType ErrorKind = "UNSUPPORTED_TYPE"
	KindExtractFailed   ErrorKind = "EXTRACT_FAILED"
	KindTranscribe      ErrorKind = "TRANSCRIBE_FAILED"
)

// ExtractionError is the single typed failure of the extractor. Kind lets the
// orchestrator tell an unsupported upload from a broken one without string
// matching.
type ExtractionError struct {
	Kind      ErrorKind
	MediaType documentModel.MediaType
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Kind, e.MediaType, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Kind, e.MediaType)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// AudioTranscriber is the audio delegate. The real implementation lives in
// extract/audio, tests swap it out.
type AudioTranscriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

type Extractor struct {
	transcriber AudioTranscriber
	ocr         ImageReader
	logger      *logger_i.Logger
}

func NewExtractor(transcriber AudioTranscriber, ocr ImageReader) *Extractor {
	return &Extractor{
		transcriber: transcriber,
		ocr:         ocr,
		logger:      logger_i.NewLogger("Extractor"),
	}
}

// Extract converts the uploaded document to plain text. Dispatch is total
// over the enumerated media types; anything else is an UnsupportedType error.
// The input buffer is never mutated.
func (e *Extractor) Extract(ctx context.Context, doc documentModel.RawDocument) (string, error) {
	e.logger.Debug("Extracting document", "mediaType", doc.MediaType, "size", len(doc.Content))

	switch {
	case doc.MediaType.IsPlainReadable():
		return string(doc.Content), nil

	case doc.MediaType == documentModel.PDF:
		text, err := extractPDF(doc.Content, e.logger)
		if err != nil {
			return "", &ExtractionError{Kind: KindExtractFailed, MediaType: doc.MediaType, Err: err}
		}
		return text, nil

	case doc.MediaType == documentModel.DOCX:
		text, err := e.withTempFile(doc, ".docx", extractOffice)
		if err != nil {
			return "", &ExtractionError{Kind: KindExtractFailed, MediaType: doc.MediaType, Err: err}
		}
		return text, nil

	case doc.MediaType.IsImage():
		text, err := extractImage(doc.Content, e.ocr, e.logger)
		if err != nil {
			return "", &ExtractionError{Kind: KindExtractFailed, MediaType: doc.MediaType, Err: err}
		}
		return text, nil

	case doc.MediaType.IsAudio():
		if e.transcriber == nil {
			return "", &ExtractionError{Kind: KindTranscribe, MediaType: doc.MediaType, Err: fmt.Errorf("speech recognition is not configured")}
		}
		text, err := e.withTempFile(doc, audioSuffix(doc), func(path string) (string, error) {
			return e.transcriber.Transcribe(ctx, path)
		})
		if err != nil {
			return "", &ExtractionError{Kind: KindTranscribe, MediaType: doc.MediaType, Err: err}
		}
		return text, nil

	default:
		e.logger.Error("Unsupported media type", "mediaType", doc.MediaType)
		return "", &ExtractionError{Kind: KindUnsupportedType, MediaType: doc.MediaType}
	}
}

// withTempFile writes the document bytes to a scoped temp file for the
// path-based strategies and removes it on every exit.
func (e *Extractor) withTempFile(doc documentModel.RawDocument, suffix string, fn func(path string) (string, error)) (string, error) {
	tmp, err := os.CreateTemp("", "doctasks-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(doc.Content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("temp file write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("temp file close: %w", err)
	}
	return fn(path)
}

func audioSuffix(doc documentModel.RawDocument) string {
	if ext := filepath.Ext(doc.Filename); ext != "" {
		return strings.ToLower(ext)
	}
	switch doc.MediaType {
	case documentModel.AudioWAV:
		return ".wav"
	case documentModel.AudioOGG:
		return ".ogg"
	case documentModel.AudioFLAC, documentModel.AudioFLCX:
		return ".flac"
	case documentModel.AudioMP4, documentModel.AudioM4A:
		return ".m4a"
	default:
		return ".mp3"
	}
}
