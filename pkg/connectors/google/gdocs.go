package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sundialhq/maestro/pkg/connectors"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
)

const docMimeType = "application/vnd.google-apps.document"

// GDocs implements connectors.Docs over the Google Docs and Drive APIs.
// Docs handles document content; Drive handles listing, search, trash,
// folder placement and sharing.
type GDocs struct {
	docs  *docs.Service
	drive *drive.Service
}

var _ connectors.Docs = (*GDocs)(nil)

// Create makes a new document, writes the initial content and optionally
// moves it into a folder.
func (d *GDocs) Create(ctx context.Context, req connectors.CreateDocRequest) (*connectors.Document, error) {
	doc, err := d.docs.Documents.Create(&docs.Document{Title: req.Title}).Context(ctx).Do()
	if err != nil {
		return nil, mapErr("docs.create", err)
	}

	if req.Content != "" {
		if err := d.insertText(ctx, doc.DocumentId, req.Content); err != nil {
			return nil, err
		}
	}

	if req.Folder != "" {
		_, err := d.drive.Files.Update(doc.DocumentId, nil).AddParents(req.Folder).Context(ctx).Do()
		if err != nil {
			return nil, mapErr("docs.move", err)
		}
	}

	return &connectors.Document{
		ID:    doc.DocumentId,
		Title: doc.Title,
		URL:   docURL(doc.DocumentId),
	}, nil
}

// Get fetches a document and flattens its content to plain text:
// paragraphs, tables (cells in a row joined by tab, rows by newline),
// headers and footers.
func (d *GDocs) Get(ctx context.Context, id string) (*connectors.Document, error) {
	doc, err := d.docs.Documents.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, mapErr("docs.get", err)
	}

	var b strings.Builder
	if doc.Body != nil {
		flattenElements(&b, doc.Body.Content)
	}
	for _, header := range doc.Headers {
		flattenElements(&b, header.Content)
	}
	for _, footer := range doc.Footers {
		flattenElements(&b, footer.Content)
	}

	return &connectors.Document{
		ID:        id,
		Title:     doc.Title,
		URL:       docURL(id),
		PlainText: b.String(),
	}, nil
}

// Update renames and/or rewrites a document. Replace deletes the existing
// body before inserting; Append adds at the end of the segment.
func (d *GDocs) Update(ctx context.Context, id string, req connectors.UpdateDocRequest) error {
	if req.Title != nil {
		_, err := d.drive.Files.Update(id, &drive.File{Name: *req.Title}).Context(ctx).Do()
		if err != nil {
			return mapErr("docs.rename", err)
		}
	}

	if req.Content == nil {
		return nil
	}

	if !req.Append {
		if err := d.clearBody(ctx, id); err != nil {
			return err
		}
	}
	return d.insertText(ctx, id, *req.Content)
}

// List returns the user's documents, most recently modified first.
func (d *GDocs) List(ctx context.Context, max int) ([]connectors.Document, error) {
	return d.query(ctx, fmt.Sprintf("mimeType='%s' and trashed=false", docMimeType), max)
}

// Search runs a name/content query over the user's documents.
func (d *GDocs) Search(ctx context.Context, query string, max int) ([]connectors.Document, error) {
	escaped := strings.ReplaceAll(query, "'", `\'`)
	q := fmt.Sprintf("mimeType='%s' and trashed=false and (name contains '%s' or fullText contains '%s')",
		docMimeType, escaped, escaped)
	return d.query(ctx, q, max)
}

// Delete moves the document to trash (soft delete).
func (d *GDocs) Delete(ctx context.Context, id string) error {
	_, err := d.drive.Files.Update(id, &drive.File{Trashed: true}).Context(ctx).Do()
	if err != nil {
		return mapErr("docs.delete", err)
	}
	return nil
}

// Share marks the document link-shareable with reader role.
func (d *GDocs) Share(ctx context.Context, id string) error {
	_, err := d.drive.Permissions.Create(id, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}).Context(ctx).Do()
	if err != nil {
		return mapErr("docs.share", err)
	}
	return nil
}

func (d *GDocs) query(ctx context.Context, q string, max int) ([]connectors.Document, error) {
	if max <= 0 {
		max = 50
	}
	resp, err := d.drive.Files.List().
		Q(q).
		PageSize(int64(max)).
		OrderBy("modifiedTime desc").
		Fields("files(id, name, modifiedTime, webViewLink)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapErr("docs.list", err)
	}

	documents := make([]connectors.Document, 0, len(resp.Files))
	for _, f := range resp.Files {
		doc := connectors.Document{
			ID:    f.Id,
			Title: f.Name,
			URL:   f.WebViewLink,
		}
		if doc.URL == "" {
			doc.URL = docURL(f.Id)
		}
		if f.ModifiedTime != "" {
			if ts, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
				doc.ModifiedAt = ts
			}
		}
		documents = append(documents, doc)
	}
	return documents, nil
}

func (d *GDocs) insertText(ctx context.Context, id, text string) error {
	_, err := d.docs.Documents.BatchUpdate(id, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{{
			InsertText: &docs.InsertTextRequest{
				Text:                 text,
				EndOfSegmentLocation: &docs.EndOfSegmentLocation{},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return mapErr("docs.insert", err)
	}
	return nil
}

// clearBody deletes the current body content so a replace starts clean.
func (d *GDocs) clearBody(ctx context.Context, id string) error {
	doc, err := d.docs.Documents.Get(id).Context(ctx).Do()
	if err != nil {
		return mapErr("docs.get", err)
	}
	if doc.Body == nil || len(doc.Body.Content) == 0 {
		return nil
	}
	end := doc.Body.Content[len(doc.Body.Content)-1].EndIndex
	// The final newline of a document cannot be deleted.
	if end <= 2 {
		return nil
	}
	_, err = d.docs.Documents.BatchUpdate(id, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{{
			DeleteContentRange: &docs.DeleteContentRangeRequest{
				Range: &docs.Range{StartIndex: 1, EndIndex: end - 1},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return mapErr("docs.clear", err)
	}
	return nil
}

func flattenElements(b *strings.Builder, elements []*docs.StructuralElement) {
	for _, el := range elements {
		switch {
		case el.Paragraph != nil:
			for _, pe := range el.Paragraph.Elements {
				if pe.TextRun != nil {
					b.WriteString(pe.TextRun.Content)
				}
			}
		case el.Table != nil:
			for _, row := range el.Table.TableRows {
				cells := make([]string, 0, len(row.TableCells))
				for _, cell := range row.TableCells {
					var cb strings.Builder
					flattenElements(&cb, cell.Content)
					cells = append(cells, strings.TrimRight(cb.String(), "\n"))
				}
				b.WriteString(strings.Join(cells, "\t"))
				b.WriteString("\n")
			}
		case el.TableOfContents != nil:
			flattenElements(b, el.TableOfContents.Content)
		}
	}
}

func docURL(id string) string {
	return "https://docs.google.com/document/d/" + id + "/edit"
}
