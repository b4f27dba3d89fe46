package middleware

import (
	"net/http"

	"site-editor-api/internal/entities"
	api "site-editor-api/internal/oapi"
	"site-editor-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EditorEmailKey is the fiber.Locals key holding the authorized editor's email.
const EditorEmailKey = "editor_email"

// Auth lets a request through only when its bearer token belongs to a known editor.
func Auth(log *zap.SugaredLogger, gate usecase.AuthUsecaseInterface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := gate.Authorize(c.Context(), c.Get(fiber.HeaderAuthorization))

		switch decision.Status {
		case entities.AuthAuthorized:
			c.Locals(EditorEmailKey, decision.Email)
			return c.Next()
		case entities.AuthDenied:
			authorized := false
			return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
				Error:        decision.Message,
				IsAuthorized: &authorized,
			})
		default:
			log.Errorw("authorization failed", "error", decision.Message, "path", c.Path())
			return c.Status(http.StatusInternalServerError).JSON(api.ErrorResponse{Error: decision.Message})
		}
	}
}
