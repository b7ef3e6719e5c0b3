package connectors

import "context"

// EmailSummary is one inbox entry. Snippet is capped at 100 chars and Body
// at 5000 chars by the implementation.
type EmailSummary struct {
	ID       string   `json:"id"`
	ThreadID string   `json:"thread_id"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	CC       string   `json:"cc,omitempty"`
	Date     string   `json:"date"`
	Subject  string   `json:"subject"`
	Snippet  string   `json:"snippet"`
	Body     string   `json:"body"`
	IsUnread bool     `json:"is_unread"`
	Labels   []string `json:"labels,omitempty"`
}

// MailListOptions bounds an inbox listing. MaxResults is capped at 100.
type MailListOptions struct {
	MaxResults int
	Query      string
}

// OutgoingEmail is the provider-facing shape of a message to send.
type OutgoingEmail struct {
	To      string
	CC      []string
	BCC     []string
	Subject string
	Body    string
}

// SendReceipt carries the provider identifiers of a sent message.
type SendReceipt struct {
	ProviderMessageID string
	ProviderThreadID  string
}

// Mail is the mail capability. Send is NOT idempotent at the wire level;
// at-most-once semantics are layered above it by the email agent.
type Mail interface {
	List(ctx context.Context, opts MailListOptions) ([]EmailSummary, error)
	Get(ctx context.Context, id string) (*EmailSummary, error)
	Send(ctx context.Context, email OutgoingEmail) (*SendReceipt, error)
}
