// Package google implements the Mail, Calendar and Docs capabilities on top
// of the Google Workspace REST APIs. All constructors take an opaque OAuth
// access token supplied by the outer auth layer; this package never performs
// token exchange itself.
package google

import (
	"context"
	"fmt"

	"github.com/sundialhq/maestro/pkg/connectors"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Provider builds Google-backed capability clients from per-request tokens.
type Provider struct{}

// NewProvider creates a Google capability provider.
func NewProvider() *Provider {
	return &Provider{}
}

var _ connectors.Provider = (*Provider)(nil)

// Mail returns a Gmail-backed mail client for the given token.
func (p *Provider) Mail(ctx context.Context, token string) (connectors.Mail, error) {
	opts, err := clientOptions("mail", token)
	if err != nil {
		return nil, err
	}
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Gmail{svc: svc}, nil
}

// Calendar returns a Google Calendar-backed calendar client for the given token.
func (p *Provider) Calendar(ctx context.Context, token string) (connectors.Calendar, error) {
	opts, err := clientOptions("calendar", token)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GCalendar{svc: svc}, nil
}

// Docs returns a Google Docs/Drive-backed document client for the given token.
func (p *Provider) Docs(ctx context.Context, token string) (connectors.Docs, error) {
	opts, err := clientOptions("docs", token)
	if err != nil {
		return nil, err
	}
	docsSvc, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docs service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &GDocs{docs: docsSvc, drive: driveSvc}, nil
}

func clientOptions(capability, token string) ([]option.ClientOption, error) {
	if token == "" {
		return nil, connectors.E(capability+".auth", connectors.KindAuthMissing, nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return []option.ClientOption{option.WithTokenSource(ts)}, nil
}
