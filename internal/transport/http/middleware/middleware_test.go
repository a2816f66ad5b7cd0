package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newApp(password string) *fiber.App {
	app := fiber.New()
	app.Use(PasswordGate(password, "/healthz"))
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/api/team", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestPasswordGate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		path     string
		header   string
		want     int
	}{
		{"disabled", "", "/api/team", "", http.StatusOK},
		{"missing header", "secret", "/api/team", "", http.StatusUnauthorized},
		{"wrong header", "secret", "/api/team", "nope", http.StatusUnauthorized},
		{"correct header", "secret", "/api/team", "secret", http.StatusOK},
		{"open path", "secret", "/healthz", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(HeaderTeamPassword, tt.header)
			}

			resp, err := newApp(tt.password).Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/api/stats", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stats?x=1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	entries := logs.FilterMessage("http").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/api/stats?x=1", fields["path"])
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.NotEmpty(t, fields["request_id"])
}
