package ports

import (
	"context"

	"github.com/adminhub/console-api/internal/core/domain"
)

// MessageService exposes the notification configuration and outbound
// email delivery.
type MessageService interface {
	Settings(ctx context.Context) (*domain.MessageSettings, error)
	UpdateSettings(ctx context.Context, update *domain.MessageSettingsUpdate) (*domain.MessageSettings, error)

	// Send delivers the email over the configured SMTP channel and
	// records it in the sent-mail log.
	Send(ctx context.Context, email domain.OutboundEmail) error

	// TestConnection sends a probe email and flips smtp.active to
	// reflect the outcome.
	TestConnection(ctx context.Context) error
}

// MailEnqueuer accepts emails for asynchronous delivery.
type MailEnqueuer interface {
	Enqueue(email domain.OutboundEmail)
}
