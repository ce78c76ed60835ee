// Package mail delivers outbound email over SMTP using the settings
// stored in the notification configuration document.
package mail

import (
	"bytes"
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/adminhub/console-api/internal/core/domain"
)

// SMTPMailer sends email through the SMTP server described by the
// per-send settings. Port 465 uses implicit TLS; any other port (587
// in practice) upgrades with STARTTLS.
type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (m *SMTPMailer) Send(ctx context.Context, smtp domain.SMTPSettings, email domain.OutboundEmail) error {
	msg := gomail.NewMsg()
	if err := msg.From(smtp.SystemEmail); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(email.Recipients...); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, email.Body)

	for _, att := range email.Attachments {
		if err := msg.AttachReader(att.Filename, bytes.NewReader(att.Content)); err != nil {
			return fmt.Errorf("mail attach %s: %w", att.Filename, err)
		}
	}

	opts := []gomail.Option{
		gomail.WithPort(smtp.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(smtp.User),
		gomail.WithPassword(smtp.Password),
	}
	if smtp.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}

	client, err := gomail.NewClient(smtp.Server, opts...)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail send: %w", err)
	}
	return nil
}
