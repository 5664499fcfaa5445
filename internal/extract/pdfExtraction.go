package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dslipak/pdf"

	"github.com/nkondratev/doctasks/internal/config"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

// extractPDF concatenates per-page text in page order. A page with no
// extractable text contributes an empty string, it is not an error.
func extractPDF(content []byte, logger *logger_i.Logger) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		logger.Error("failed opening of pdf document")
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var text strings.Builder
	numPages := reader.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page, logger)
		if err != nil {
			// a broken page contributes nothing, the rest still count
			logger.Error("Error parsing page content", "page", i, "Error", err)
			continue
		}
		text.WriteString(content)
	}
	return text.String(), nil
}

// protectExtract guards GetPlainText, which can hang on malformed pages.
func protectExtract(page pdf.Page, logger *logger_i.Logger) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractTimeout):
		logger.Error("pageExtract", "timeout", true)
		return "", errors.New("timeout")
	}
}
