// Package extract converts uploaded file bytes to plain text, one adapter per
// supported format. Adapters are pure functions over byte slices so callers can
// feed them data straight from a multipart upload without touching disk.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxExtractedTextSize limits the extracted text size (1MB)
	MaxExtractedTextSize = 1024 * 1024
)

// Filetype derives the file type from a filename's extension, lowercased.
// Returns "unknown" for anything outside the supported set.
func Filetype(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf", "docx", "doc", "xls", "xlsx", "txt":
		return ext
	default:
		return "unknown"
	}
}

// Text runs the adapter matching filetype over data.
func Text(filetype string, data []byte) (string, error) {
	switch filetype {
	case "pdf":
		return PDF(data)
	case "docx", "doc":
		return DOCX(data)
	case "xls", "xlsx":
		return Excel(data)
	case "txt":
		return Plain(data)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filetype)
	}
}

// Plain treats data as UTF-8 text.
func Plain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	text := string(data)
	if len(text) > MaxExtractedTextSize {
		text = text[:MaxExtractedTextSize] + "\n... [Content truncated]"
	}
	return text, nil
}

// cleanText removes null bytes and collapses runs of whitespace while
// preserving line structure.
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = normalizeWhitespace(text)
	return strings.TrimSpace(text)
}

// normalizeWhitespace collapses horizontal whitespace runs into single spaces,
// keeping newlines intact.
func normalizeWhitespace(text string) string {
	var result strings.Builder
	lastWasSpace := false

	for _, r := range text {
		if unicode.IsSpace(r) {
			if r == '\n' {
				result.WriteRune('\n')
				lastWasSpace = false
			} else if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}
