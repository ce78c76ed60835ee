package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

// IdentityHeader carries the session token on protected routes.
const IdentityHeader = "X-API-Key"

// Auth validates the presented session token and injects the subject
// username into the request context. Signature or format failures
// surface as ErrTokenInvalid; a signature-valid token that is no longer
// registered in the session store surfaces as ErrTokenExpired.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(IdentityHeader)
			if token == "" {
				return domain.ErrTokenInvalid
			}

			subject, err := auth.Validate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set("username", subject)
			c.Set("token", token)
			return next(c)
		}
	}
}
