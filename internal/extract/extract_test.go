package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestFiletype(t *testing.T) {
	cases := []struct {
		filename string
		expected string
	}{
		{"report.pdf", "pdf"},
		{"Report.PDF", "pdf"},
		{"notes.docx", "docx"},
		{"legacy.doc", "doc"},
		{"data.xlsx", "xlsx"},
		{"old_data.xls", "xls"},
		{"readme.txt", "txt"},
		{"archive.tar.gz", "unknown"},
		{"image.png", "unknown"},
		{"noextension", "unknown"},
		{"", "unknown"},
		{"dotted.name.TXT", "txt"},
	}

	for _, tc := range cases {
		if got := Filetype(tc.filename); got != tc.expected {
			t.Errorf("Filetype(%q) = %q, want %q", tc.filename, got, tc.expected)
		}
	}
}

func TestPlain(t *testing.T) {
	text, err := Plain([]byte("hello world\nline two"))
	if err != nil {
		t.Fatalf("Plain failed: %v", err)
	}
	if text != "hello world\nline two" {
		t.Errorf("Plain changed content: %q", text)
	}
}

func TestPlainRejectsInvalidUTF8(t *testing.T) {
	_, err := Plain([]byte{0xff, 0xfe, 0xfd})
	if err == nil {
		t.Error("Expected error for non-UTF-8 input")
	}
}

func TestTextRejectsUnsupportedType(t *testing.T) {
	_, err := Text("png", []byte("data"))
	if err == nil {
		t.Error("Expected error for unsupported file type")
	}
	if !strings.Contains(err.Error(), "unsupported file type") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestTextDispatchesTxt(t *testing.T) {
	text, err := Text("txt", []byte("dispatched"))
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if text != "dispatched" {
		t.Errorf("Unexpected text: %q", text)
	}
}

// buildDOCX assembles a minimal DOCX archive in memory with the given
// paragraphs in word/document.xml.
func buildDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		body.WriteString(p)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(body.String())); err != nil {
		t.Fatalf("failed to write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func TestDOCX(t *testing.T) {
	data := buildDOCX(t, []string{"First paragraph", "Second paragraph"})

	text, err := DOCX(data)
	if err != nil {
		t.Fatalf("DOCX failed: %v", err)
	}
	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 paragraphs, got %d: %q", len(lines), text)
	}
	if lines[0] != "First paragraph" || lines[1] != "Second paragraph" {
		t.Errorf("Unexpected paragraph text: %q", text)
	}
}

func TestDOCXSkipsEmptyParagraphs(t *testing.T) {
	data := buildDOCX(t, []string{"Content", "", "More content"})

	text, err := DOCX(data)
	if err != nil {
		t.Fatalf("DOCX failed: %v", err)
	}
	if strings.Contains(text, "\n\n") {
		t.Errorf("Empty paragraphs should not produce blank lines: %q", text)
	}
}

func TestDOCXRejectsNonZip(t *testing.T) {
	_, err := DOCX([]byte("this is not a zip archive"))
	if err == nil {
		t.Error("Expected error for non-ZIP input")
	}
}

func TestDOCXRejectsZipWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("unrelated.txt")
	if err != nil {
		t.Fatalf("failed to create zip entry: %v", err)
	}
	w.Write([]byte("nothing"))
	zw.Close()

	_, err = DOCX(buf.Bytes())
	if err == nil {
		t.Error("Expected error for ZIP without word/document.xml")
	}
}

func TestExcel(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "name")
	f.SetCellValue("Sheet1", "B1", "count")
	f.SetCellValue("Sheet1", "A2", "widgets")
	f.SetCellValue("Sheet1", "B2", 42)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}

	text, err := Excel(buf.Bytes())
	if err != nil {
		t.Fatalf("Excel failed: %v", err)
	}
	if !strings.Contains(text, "name\tcount") {
		t.Errorf("Expected tab-separated header row, got %q", text)
	}
	if !strings.Contains(text, "widgets\t42") {
		t.Errorf("Expected data row, got %q", text)
	}
}

func TestExcelMultiSheetHeaders(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "first")
	if _, err := f.NewSheet("Extra"); err != nil {
		t.Fatalf("failed to add sheet: %v", err)
	}
	f.SetCellValue("Extra", "A1", "second")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}

	text, err := Excel(buf.Bytes())
	if err != nil {
		t.Fatalf("Excel failed: %v", err)
	}
	if !strings.Contains(text, "[Sheet: Sheet1]") || !strings.Contains(text, "[Sheet: Extra]") {
		t.Errorf("Expected sheet headers for multi-sheet workbook, got %q", text)
	}
}

func TestExcelRejectsGarbage(t *testing.T) {
	_, err := Excel([]byte("not a workbook"))
	if err == nil {
		t.Error("Expected error for invalid workbook bytes")
	}
}

func TestPDFRejectsGarbage(t *testing.T) {
	_, err := PDF([]byte("not a pdf"))
	if err == nil {
		t.Error("Expected error for invalid PDF bytes")
	}
}
