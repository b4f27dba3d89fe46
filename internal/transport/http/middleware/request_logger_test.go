package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/editors", func(c *fiber.Ctx) error {
		c.Locals(EditorEmailKey, "auth@gmail.com")
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/about", func(c *fiber.Ctx) error {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": errors.New("Bad credentials").Error()})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/editors?id=rec1", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/about", nil))
	require.NoError(t, err)
	_ = resp.Body.Close()

	entries := logs.All()
	require.Len(t, entries, 2)

	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	require.Equal(t, "/editors", fields["path"])
	require.Equal(t, "auth@gmail.com", fields["editor"])

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.EqualValues(t, http.StatusInternalServerError, entries[1].ContextMap()["status"])
}
