package connectors

import "context"

// Provider builds per-request capability clients from an opaque third-party
// token. Implementations must return KindAuthMissing when the token is empty.
type Provider interface {
	Mail(ctx context.Context, token string) (Mail, error)
	Calendar(ctx context.Context, token string) (Calendar, error)
	Docs(ctx context.Context, token string) (Docs, error)
}
