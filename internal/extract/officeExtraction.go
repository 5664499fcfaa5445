package extract

import (
	"fmt"

	"github.com/lu4p/cat"
)

// extractOffice reads a .docx (also .odt/.rtf) file and returns the paragraph
// text in document order, newline separated, as cat produces it.
func extractOffice(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract docx: %w", err)
	}
	return text, nil
}
