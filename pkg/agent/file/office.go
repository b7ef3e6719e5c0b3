package file

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
)

// OOXML documents are zip archives of XML parts. The extractors below pull
// the text runs (w:t for Word, a:t for PowerPoint) out of the relevant
// parts without modeling the full schema.

func extractDOCX(blob []byte) (string, *Structure, error) {
	archive, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return "", nil, fmt.Errorf("invalid DOCX: %w", err)
	}

	var docXML []byte
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			docXML, err = readZipFile(f)
			if err != nil {
				return "", nil, err
			}
			break
		}
	}
	if docXML == nil {
		return "", nil, fmt.Errorf("invalid DOCX: missing word/document.xml")
	}

	paragraphs, tables, err := wordParagraphs(docXML)
	if err != nil {
		return "", nil, fmt.Errorf("invalid DOCX: %w", err)
	}

	text := strings.Join(paragraphs, "\n\n")
	return text, &Structure{
		Paragraphs:  len(paragraphs),
		Tables:      tables,
		TotalLength: len(text),
	}, nil
}

// wordParagraphs streams document.xml, grouping text runs by paragraph and
// counting tables.
func wordParagraphs(docXML []byte) ([]string, int, error) {
	decoder := xml.NewDecoder(bytes.NewReader(docXML))

	var paragraphs []string
	var current strings.Builder
	tables := 0
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if tok == nil {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "tbl":
				tables++
			case "t":
				var text string
				if err := decoder.DecodeElement(&text, &el); err != nil {
					return nil, 0, err
				}
				current.WriteString(text)
			}
		case xml.EndElement:
			if el.Name.Local == "p" && inParagraph {
				if s := strings.TrimSpace(current.String()); s != "" {
					paragraphs = append(paragraphs, s)
				}
				inParagraph = false
			}
		}
	}
	return paragraphs, tables, nil
}

func extractPPTX(blob []byte) (string, *Structure, error) {
	archive, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return "", nil, fmt.Errorf("invalid PPTX: %w", err)
	}

	// Slide parts are ppt/slides/slideN.xml; sort by name for stable order.
	var slides []*zip.File
	for _, f := range archive.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			slides = append(slides, f)
		}
	}
	sort.Slice(slides, func(i, j int) bool { return slideNumber(slides[i].Name) < slideNumber(slides[j].Name) })

	lengths := make(map[string]int, len(slides))
	var b strings.Builder
	for i, f := range slides {
		data, err := readZipFile(f)
		if err != nil {
			return "", nil, err
		}
		texts, err := drawingTexts(data)
		if err != nil {
			return "", nil, fmt.Errorf("invalid PPTX: %w", err)
		}
		slide := strings.Join(texts, "\n")
		lengths[fmt.Sprintf("slide_%d", i+1)] = len(slide)
		fmt.Fprintf(&b, "Slide %d:\n%s\n\n", i+1, slide)
	}

	text := b.String()
	return text, &Structure{
		Slides:      len(slides),
		Lengths:     lengths,
		TotalLength: len(text),
	}, nil
}

// drawingTexts collects every a:t run in a slide part.
func drawingTexts(slideXML []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(slideXML))
	var texts []string
	for {
		tok, err := decoder.Token()
		if tok == nil {
			break
		}
		if err != nil {
			return nil, err
		}
		if el, ok := tok.(xml.StartElement); ok && el.Name.Local == "t" {
			var text string
			if err := decoder.DecodeElement(&text, &el); err != nil {
				return nil, err
			}
			if strings.TrimSpace(text) != "" {
				texts = append(texts, text)
			}
		}
	}
	return texts, nil
}

func slideNumber(name string) int {
	name = strings.TrimPrefix(name, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	n := 0
	for _, r := range name {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
