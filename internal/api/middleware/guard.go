package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/console-api/internal/api/metrics"
	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

// Guard is the ordered authorisation pipeline that follows Auth:
// resolve the account, reject disabled accounts, then check that the
// account's role holds the permission the HTTP verb requires
// (GET→read, POST→write, PUT→edit, DELETE→delete; other verbs are
// always denied). Unknown roles hold no permissions.
func Guard(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, _ := c.Get("username").(string)
			if username == "" {
				return domain.ErrTokenInvalid
			}

			user, err := users.FindByUsername(c.Request().Context(), username)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return domain.ErrTokenInvalid
				}
				return err
			}

			if user.Disabled {
				return domain.ErrAccountDisabled
			}

			method := c.Request().Method
			required, ok := domain.PermissionForMethod(method)
			if !ok || !domain.RoleAllows(user.Role, required) {
				metrics.PermissionDenialsTotal.WithLabelValues(user.Role, method).Inc()
				return domain.ErrPermissionDenied
			}

			c.Set("role", user.Role)
			c.Set("user_id", user.ID)
			return next(c)
		}
	}
}
