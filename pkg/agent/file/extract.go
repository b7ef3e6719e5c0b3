package file

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
	"golang.org/x/net/html"
)

// MaxFileSize is the ingest cap.
const MaxFileSize = 50 << 20

// SupportedExtensions is the ingest allow-list.
var SupportedExtensions = map[string]bool{
	"pdf": true, "docx": true, "pptx": true, "csv": true, "xlsx": true,
	"txt": true, "md": true, "json": true, "html": true,
}

// Structure describes the extracted document's shape. Counts drive page
// estimation during chunking.
type Structure struct {
	Pages       int            `json:"pages,omitempty"`
	Slides      int            `json:"slides,omitempty"`
	Paragraphs  int            `json:"paragraphs,omitempty"`
	Tables      int            `json:"tables,omitempty"`
	Sheets      int            `json:"sheets,omitempty"`
	Rows        int            `json:"rows,omitempty"`
	TopKeys     []string       `json:"top_keys,omitempty"`
	Lengths     map[string]int `json:"lengths,omitempty"`
	TotalLength int            `json:"total_length"`
}

// pageEquivalents returns the count usable for page estimation.
func (s *Structure) pageEquivalents() int {
	switch {
	case s.Pages > 0:
		return s.Pages
	case s.Slides > 0:
		return s.Slides
	case s.Sheets > 0:
		return s.Sheets
	default:
		return 0
	}
}

// Extract dispatches on the detected type and returns plain text plus the
// document structure.
func Extract(ext string, blob []byte) (string, *Structure, error) {
	switch ext {
	case "txt", "md":
		text := string(blob)
		return text, &Structure{
			Paragraphs:  strings.Count(text, "\n\n") + 1,
			TotalLength: len(text),
		}, nil
	case "json":
		return extractJSON(blob)
	case "html":
		return extractHTML(blob)
	case "csv":
		return extractCSV(blob)
	case "pdf":
		return extractPDF(blob)
	case "xlsx":
		return extractXLSX(blob)
	case "docx":
		return extractDOCX(blob)
	case "pptx":
		return extractPPTX(blob)
	default:
		return "", nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

// extractJSON pretty-prints the document and records its top-level keys.
func extractJSON(blob []byte) (string, *Structure, error) {
	var raw any
	if err := json.Unmarshal(blob, &raw); err != nil {
		return "", nil, fmt.Errorf("invalid JSON: %w", err)
	}
	pretty, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return "", nil, err
	}

	var keys []string
	if obj, ok := raw.(map[string]any); ok {
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}
	return string(pretty), &Structure{TopKeys: keys, TotalLength: len(pretty)}, nil
}

// extractHTML strips tags and collapses whitespace.
func extractHTML(blob []byte) (string, *Structure, error) {
	doc, err := html.Parse(bytes.NewReader(blob))
	if err != nil {
		return "", nil, fmt.Errorf("invalid HTML: %w", err)
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	text := strings.Join(strings.Fields(b.String()), " ")
	return text, &Structure{TotalLength: len(text)}, nil
}

// extractCSV renders rows as tab-separated lines.
func extractCSV(blob []byte) (string, *Structure, error) {
	reader := csv.NewReader(bytes.NewReader(blob))
	reader.FieldsPerRecord = -1

	var b strings.Builder
	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("invalid CSV: %w", err)
		}
		b.WriteString(strings.Join(record, "\t"))
		b.WriteString("\n")
		rows++
	}
	text := b.String()
	return text, &Structure{Rows: rows, TotalLength: len(text)}, nil
}

func extractPDF(blob []byte) (string, *Structure, error) {
	reader, err := pdf.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return "", nil, fmt.Errorf("invalid PDF: %w", err)
	}

	pages := reader.NumPage()
	lengths := make(map[string]int, pages)
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		lengths[fmt.Sprintf("page_%d", i)] = len(content)
		b.WriteString(content)
		b.WriteString("\n\n")
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", nil, fmt.Errorf("PDF contains no extractable text")
	}
	return text, &Structure{Pages: pages, Lengths: lengths, TotalLength: len(text)}, nil
}

func extractXLSX(blob []byte) (string, *Structure, error) {
	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return "", nil, fmt.Errorf("invalid XLSX: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	totalRows := 0
	sheets := f.GetSheetList()
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "Sheet: %s\n", sheet)
		for _, row := range rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		totalRows += len(rows)
	}

	text := b.String()
	return text, &Structure{Sheets: len(sheets), Rows: totalRows, TotalLength: len(text)}, nil
}
