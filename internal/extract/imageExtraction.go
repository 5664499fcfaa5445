package extract

import (
	"fmt"
	"slices"

	"github.com/otiai10/gosseract/v2"

	"github.com/nkondratev/doctasks/pkg/logger_i"
)

// ImageReader is the OCR seam; the tesseract client needs native language
// packs, so tests substitute this.
type ImageReader interface {
	AvailableLanguages() ([]string, error)
	Recognize(content []byte, languages []string) (string, error)
}

type tesseractReader struct{}

func NewTesseractReader() ImageReader { return tesseractReader{} }

func (tesseractReader) AvailableLanguages() ([]string, error) {
	return gosseract.GetAvailableLanguages()
}

func (tesseractReader) Recognize(content []byte, languages []string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if len(languages) > 0 {
		if err := client.SetLanguage(languages...); err != nil {
			return "", fmt.Errorf("set ocr language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(content); err != nil {
		return "", fmt.Errorf("set ocr image: %w", err)
	}
	return client.Text()
}

func extractImage(content []byte, ocr ImageReader, logger *logger_i.Logger) (string, error) {
	available, err := ocr.AvailableLanguages()
	if err != nil {
		// language listing failing is not fatal, the default pack still works
		logger.Warn("Could not list ocr language packs", "error", err)
		available = nil
	}

	languages := pickLanguages(available)
	logger.Debug("extractImage", "languages", languages)
	return ocr.Recognize(content, languages)
}

// pickLanguages selects the richest available pack deterministically:
// rus+eng, then eng, then whatever the default pack is.
func pickLanguages(available []string) []string {
	hasRus := slices.Contains(available, "rus")
	hasEng := slices.Contains(available, "eng")

	switch {
	case hasRus && hasEng:
		return []string{"rus", "eng"}
	case hasEng:
		return []string{"eng"}
	default:
		return nil
	}
}
