package connectors

import (
	"context"
	"time"
)

// Document is an external document reference. PlainText is populated only
// by Get, which flattens paragraphs, tables, headers and footers.
type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	ModifiedAt time.Time `json:"modified_at,omitempty"`
	PlainText  string    `json:"plain_text,omitempty"`
}

// CreateDocRequest creates a new document, optionally inside a folder.
type CreateDocRequest struct {
	Title   string
	Content string
	Folder  string
}

// UpdateDocRequest carries partial document updates. When Append is true
// Content is appended to the existing body, otherwise it replaces it.
type UpdateDocRequest struct {
	Title   *string
	Content *string
	Append  bool
}

// Docs is the document capability. Delete is soft (move-to-trash).
// Share marks the document link-shareable with reader role; callers treat
// a Share failure as non-fatal.
type Docs interface {
	Create(ctx context.Context, req CreateDocRequest) (*Document, error)
	Get(ctx context.Context, id string) (*Document, error)
	Update(ctx context.Context, id string, req UpdateDocRequest) error
	List(ctx context.Context, max int) ([]Document, error)
	Search(ctx context.Context, query string, max int) ([]Document, error)
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string) error
}
