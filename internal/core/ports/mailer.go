package ports

import (
	"context"

	"github.com/adminhub/console-api/internal/core/domain"
)

// Mailer delivers a composed email using the given SMTP settings.
type Mailer interface {
	Send(ctx context.Context, smtp domain.SMTPSettings, email domain.OutboundEmail) error
}

// EmailLog records successfully sent emails.
type EmailLog interface {
	Record(ctx context.Context, email domain.OutboundEmail) error
}
