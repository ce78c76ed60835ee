// Package bootstrap performs one-time startup initialisation: unique
// indexes, the owner account and the default notification settings.
package bootstrap

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
	"github.com/adminhub/console-api/internal/infrastructure/config"
	mongodb "github.com/adminhub/console-api/internal/infrastructure/db/mongo"
)

// Run applies all startup initialisation steps. Failures are logged and
// returned, but callers may treat them as non-fatal: a running process
// with a missing owner account is still able to serve traffic.
func Run(ctx context.Context, users *mongodb.MongoUserRepository, userService ports.UserService, settings ports.SettingsRepository, owner config.OwnerConfig, log zerolog.Logger) error {
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("bootstrap: index creation failed")
		return err
	}

	if err := createOwner(ctx, userService, owner, log); err != nil {
		log.Error().Err(err).Msg("bootstrap: owner creation failed")
		return err
	}

	if err := settings.EnsureDefault(ctx); err != nil {
		log.Error().Err(err).Msg("bootstrap: settings initialisation failed")
		return err
	}

	return nil
}

// createOwner seeds the owner account from configuration. An existing
// account with the same username or email short-circuits creation.
func createOwner(ctx context.Context, userService ports.UserService, owner config.OwnerConfig, log zerolog.Logger) error {
	if owner.Username == "" || owner.Password == "" || owner.Email == "" {
		log.Warn().Msg("bootstrap: owner credentials not configured, skipping owner creation")
		return nil
	}

	exists, err := userService.Exists(ctx, owner.Email, owner.Username)
	if err != nil {
		return err
	}
	if exists {
		log.Info().Str("username", owner.Username).Msg("bootstrap: owner already exists, skipping creation")
		return nil
	}

	_, err = userService.Create(ctx, owner.Username, owner.Email, "Site Owner", owner.Password, domain.RoleOwner)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			log.Info().Msg("bootstrap: owner already exists, skipping creation")
			return nil
		}
		return err
	}

	log.Info().Str("username", owner.Username).Msg("bootstrap: owner created")
	return nil
}
