package ports

import (
	"context"

	"github.com/adminhub/console-api/internal/core/domain"
)

// SettingsRepository persists the single MessageSettings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.MessageSettings, error)
	Replace(ctx context.Context, settings *domain.MessageSettings) error
	SetSMTPActive(ctx context.Context, active bool) error

	// EnsureDefault inserts the default settings document when absent.
	EnsureDefault(ctx context.Context) error
}
