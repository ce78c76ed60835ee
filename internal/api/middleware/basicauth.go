package middleware

import (
	"crypto/subtle"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/adminhub/console-api/internal/core/domain"
	"github.com/adminhub/console-api/internal/core/ports"
)

const (
	basicAuthMaxAttempts = 5
	basicAuthWindow      = 5 * time.Minute
)

// DocsBasicAuth protects the introspection endpoints with a static
// credential pair under the same attempt-throttling policy as login:
// five failures within five minutes lock the presented username out.
func DocsBasicAuth(username, password string, throttle ports.ThrottleStore) echo.MiddlewareFunc {
	return echomiddleware.BasicAuth(func(user, pass string, c echo.Context) (bool, error) {
		ctx := c.Request().Context()
		now := time.Now().UTC()

		attempts, lastAttempt, err := throttle.Attempts(ctx, user)
		if err != nil {
			return false, err
		}
		if attempts >= basicAuthMaxAttempts && !lastAttempt.IsZero() && now.Sub(lastAttempt) < basicAuthWindow {
			return false, domain.ErrRateLimited
		}

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		if !userOK || !passOK {
			if err := throttle.RecordFailure(ctx, user, attempts+1, now); err != nil {
				return false, err
			}
			return false, nil
		}

		if err := throttle.Reset(ctx, user); err != nil {
			return false, err
		}
		return true, nil
	})
}
