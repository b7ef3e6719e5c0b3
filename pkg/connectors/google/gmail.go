package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sundialhq/maestro/pkg/connectors"
	"google.golang.org/api/gmail/v1"
)

const (
	maxListResults = 100
	snippetLimit   = 100
	bodyLimit      = 5000
)

// Gmail implements connectors.Mail over the Gmail API.
type Gmail struct {
	svc *gmail.Service
}

var _ connectors.Mail = (*Gmail)(nil)

// List fetches inbox entries matching the query, newest first.
func (g *Gmail) List(ctx context.Context, opts connectors.MailListOptions) ([]connectors.EmailSummary, error) {
	max := opts.MaxResults
	if max <= 0 || max > maxListResults {
		max = maxListResults
	}

	call := g.svc.Users.Messages.List("me").MaxResults(int64(max)).Context(ctx)
	if opts.Query != "" {
		call = call.Q(opts.Query)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, mapErr("mail.list", err)
	}

	summaries := make([]connectors.EmailSummary, 0, len(resp.Messages))
	for _, ref := range resp.Messages {
		msg, err := g.Get(ctx, ref.Id)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *msg)
	}
	return summaries, nil
}

// Get fetches a single message with headers and decoded body.
func (g *Gmail) Get(ctx context.Context, id string) (*connectors.EmailSummary, error) {
	msg, err := g.svc.Users.Messages.Get("me", id).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, mapErr("mail.get", err)
	}

	summary := &connectors.EmailSummary{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		Snippet:  truncate(msg.Snippet, snippetLimit),
		Labels:   msg.LabelIds,
	}
	for _, label := range msg.LabelIds {
		if label == "UNREAD" {
			summary.IsUnread = true
			break
		}
	}
	if msg.Payload != nil {
		for _, h := range msg.Payload.Headers {
			switch strings.ToLower(h.Name) {
			case "from":
				summary.From = h.Value
			case "to":
				summary.To = h.Value
			case "cc":
				summary.CC = h.Value
			case "date":
				summary.Date = h.Value
			case "subject":
				summary.Subject = h.Value
			}
		}
		summary.Body = truncate(extractBody(msg.Payload), bodyLimit)
	}
	return summary, nil
}

// Send delivers the message. Not idempotent: callers own at-most-once.
func (g *Gmail) Send(ctx context.Context, email connectors.OutgoingEmail) (*connectors.SendReceipt, error) {
	raw := buildRFC822(email)
	sent, err := g.svc.Users.Messages.Send("me", &gmail.Message{
		Raw: base64.RawURLEncoding.EncodeToString([]byte(raw)),
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapErr("mail.send", err)
	}
	return &connectors.SendReceipt{
		ProviderMessageID: sent.Id,
		ProviderThreadID:  sent.ThreadId,
	}, nil
}

// extractBody walks the MIME tree preferring text/plain parts.
func extractBody(part *gmail.MessagePart) string {
	if part == nil {
		return ""
	}
	if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
		return decodeBody(part.Body.Data)
	}
	for _, p := range part.Parts {
		if body := extractBody(p); body != "" {
			return body
		}
	}
	// Fall back to the top-level body (single-part messages)
	if part.Body != nil && part.Body.Data != "" {
		return decodeBody(part.Body.Data)
	}
	return ""
}

func decodeBody(data string) string {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return ""
	}
	return string(decoded)
}

func buildRFC822(email connectors.OutgoingEmail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", email.To)
	if len(email.CC) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(email.CC, ", "))
	}
	if len(email.BCC) > 0 {
		fmt.Fprintf(&b, "Bcc: %s\r\n", strings.Join(email.BCC, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.Body)
	return b.String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
