package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Excel renders workbook contents as tab-separated text, one row per line.
// Sheets after the first are separated by a blank line and a sheet header so
// multi-sheet workbooks stay readable inside a prompt.
func Excel(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	if len(sheetNames) == 0 {
		return "", fmt.Errorf("no sheets found in workbook")
	}

	var textBuilder strings.Builder

	for i, sheet := range sheetNames {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("failed to read sheet '%s': %w", sheet, err)
		}

		if len(sheetNames) > 1 {
			if i > 0 {
				textBuilder.WriteString("\n")
			}
			textBuilder.WriteString(fmt.Sprintf("[Sheet: %s]\n", sheet))
		}

		for _, row := range rows {
			for j := range row {
				row[j] = strings.TrimSpace(row[j])
			}
			textBuilder.WriteString(strings.Join(row, "\t"))
			textBuilder.WriteString("\n")
		}

		if textBuilder.Len() > MaxExtractedTextSize {
			break
		}
	}

	extracted := strings.TrimSpace(textBuilder.String())
	if len(extracted) > MaxExtractedTextSize {
		extracted = extracted[:MaxExtractedTextSize] + "\n... [Content truncated]"
	}

	return extracted, nil
}
