package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/quizroom/quizroom-api/internal/middleware"
)

func setupCorrelationApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.CorrelationID())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(middleware.GetCorrelationID(c))
	})
	return app
}

func TestCorrelationIDGeneratedWhenMissing(t *testing.T) {
	app := setupCorrelationApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	id := resp.Header.Get("X-Correlation-ID")
	require.NotEmpty(t, id)
}

func TestCorrelationIDPreservedFromHeader(t *testing.T) {
	app := setupCorrelationApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Correlation-ID", "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	require.Equal(t, "abc-123", resp.Header.Get("X-Correlation-ID"))
}

func TestCorrelationIDFallsBackToRequestID(t *testing.T) {
	app := setupCorrelationApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-9")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	require.Equal(t, "req-9", resp.Header.Get("X-Correlation-ID"))
}
