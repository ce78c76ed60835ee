package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runBearer(t *testing.T, secret, header string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return StaticBearer(secret)(next)(c)
}

func TestStaticBearer(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		header  string
		allowed bool
	}{
		{"exact match", "s3cret", "Bearer s3cret", true},
		{"secret as substring", "s3cret", "Bearer xxs3cretxx", true},
		{"case-insensitive scheme", "s3cret", "bearer s3cret", true},
		{"wrong secret", "s3cret", "Bearer other", false},
		{"missing header", "s3cret", "", false},
		{"wrong scheme", "s3cret", "Basic s3cret", false},
		{"empty configured secret", "", "Bearer anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runBearer(t, tt.secret, tt.header)
			if tt.allowed {
				if err != nil {
					t.Fatalf("expected allow, got %v", err)
				}
				return
			}
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %v", err)
			}
		})
	}
}
