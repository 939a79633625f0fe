package classify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
)

const (
	// minTextLength is the least extracted text worth classifying.
	minTextLength = 50
	// previewLimit caps the extracted-text preview kept on the analysis.
	previewLimit = 1000
	// wordsPerPage is the rough estimate behind pageCount.
	wordsPerPage = 250
)

// ExtractText returns a text representation of the file. Plain-text and JSON
// content is read directly; PDFs and other binary formats yield a synthetic
// placeholder, which limits their classification to filename-based signal.
func ExtractText(file *InputFile) string {
	ct := strings.ToLower(file.ContentType)

	switch {
	case strings.Contains(ct, "text/"), strings.Contains(ct, "json"):
		return string(file.Content)
	case strings.Contains(ct, "pdf"):
		return fmt.Sprintf("PDF Document: %s\nSize: %d bytes\nThis is a PDF file that requires specialized parsing.",
			file.Name, file.Size)
	default:
		return fmt.Sprintf("Document: %s\nType: %s\nSize: %d bytes",
			file.Name, file.ContentType, file.Size)
	}
}

// truncateText caps s at max bytes without splitting a multibyte rune, so
// truncated previews and prompts stay valid UTF-8.
func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

// documentMetadata derives word and page counts from the extracted text.
// Language detection is fixed to "en".
func documentMetadata(text string) *types.DocumentMetadata {
	wordCount := len(strings.Fields(text))
	pageCount := (wordCount + wordsPerPage - 1) / wordsPerPage

	return &types.DocumentMetadata{
		WordCount: wordCount,
		PageCount: pageCount,
		Language:  "en",
	}
}
