package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

// MessageService manages the notification settings document and
// outbound email delivery through the configured SMTP channel.
type MessageService struct {
	settings ports.SettingsRepository
	mailer   ports.Mailer
	sentLog  ports.EmailLog
	log      zerolog.Logger
}

func NewMessageService(settings ports.SettingsRepository, mailer ports.Mailer, sentLog ports.EmailLog, log zerolog.Logger) *MessageService {
	return &MessageService{settings: settings, mailer: mailer, sentLog: sentLog, log: log}
}

func (s *MessageService) Settings(ctx context.Context) (*domain.MessageSettings, error) {
	return s.settings.Get(ctx)
}

// UpdateSettings merges the partial update over the stored document and
// replaces it.
func (s *MessageService) UpdateSettings(ctx context.Context, update *domain.MessageSettingsUpdate) (*domain.MessageSettings, error) {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	if update.SMTP != nil {
		current.SMTP = *update.SMTP
	}
	if update.Whatsapp != nil {
		current.Whatsapp = *update.Whatsapp
	}
	if update.SMS != nil {
		current.SMS = *update.SMS
	}

	if err := s.settings.Replace(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Send delivers the email and records it in the sent-mail log. A log
// write failure does not undo the delivery; it is logged and reported.
func (s *MessageService) Send(ctx context.Context, email domain.OutboundEmail) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, settings.SMTP, email); err != nil {
		return err
	}

	if err := s.sentLog.Record(ctx, email); err != nil {
		s.log.Error().Err(err).Str("subject", email.Subject).Msg("email sent but not recorded")
		return err
	}
	return nil
}

// TestConnection sends a probe to the configured system address and
// persists the outcome in smtp.active.
func (s *MessageService) TestConnection(ctx context.Context) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}

	probe := domain.OutboundEmail{
		Subject:    "Test Email Connection",
		Body:       "This is a test email to verify SMTP configuration.",
		Recipients: []string{settings.SMTP.SystemEmail},
	}

	sendErr := s.mailer.Send(ctx, settings.SMTP, probe)
	if err := s.settings.SetSMTPActive(ctx, sendErr == nil); err != nil {
		s.log.Error().Err(err).Msg("failed to persist smtp status")
	}
	return sendErr
}
