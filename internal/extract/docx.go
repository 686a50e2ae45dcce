package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// DOCX extracts paragraph text from DOCX bytes. A DOCX file is a ZIP archive
// holding word/document.xml; non-empty paragraphs come out one per line.
// Legacy binary .doc files are not ZIP archives and fail the open step.
func DOCX(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	zipReader, err := zip.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: not a valid ZIP archive: %w", err)
	}

	var documentXML []byte
	for _, file := range zipReader.File {
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document.xml: %w", err)
			}
			documentXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("failed to read document.xml: %w", err)
			}
			break
		}
	}
	if documentXML == nil {
		return "", fmt.Errorf("invalid DOCX: missing word/document.xml")
	}

	extracted := extractTextFromDOCXML(documentXML)
	extracted = strings.TrimSpace(extracted)

	if len(extracted) > MaxExtractedTextSize {
		extracted = extracted[:MaxExtractedTextSize] + "\n... [Content truncated]"
	}

	return extracted, nil
}

// extractTextFromDOCXML walks the document XML and collects text per paragraph.
func extractTextFromDOCXML(xmlContent []byte) string {
	var textBuilder strings.Builder
	decoder := xml.NewDecoder(bytes.NewReader(xmlContent))

	inParagraph := false
	paragraphText := strings.Builder{}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "p" && t.Name.Space == wordprocessingNS {
				inParagraph = true
				paragraphText.Reset()
			}
		case xml.EndElement:
			if t.Name.Local == "p" && t.Name.Space == wordprocessingNS {
				if inParagraph && paragraphText.Len() > 0 {
					textBuilder.WriteString(paragraphText.String())
					textBuilder.WriteString("\n")
				}
				inParagraph = false
			}
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text != "" && inParagraph {
				if paragraphText.Len() > 0 {
					paragraphText.WriteString(" ")
				}
				paragraphText.WriteString(text)
			}
		}
	}

	return textBuilder.String()
}
