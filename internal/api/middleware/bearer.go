package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// StaticBearer gates the public registration surface behind a fixed
// shared secret. The presented bearer value only has to contain the
// secret as a substring, a coarse anti-abuse gate rather than per-user
// authentication.
func StaticBearer(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusForbidden, "unauthorized")
			}
			if secret == "" || !strings.Contains(parts[1], secret) {
				return echo.NewHTTPError(http.StatusForbidden, "unauthorized")
			}
			return next(c)
		}
	}
}
