package handlers_fiber

import (
	"errors"
	"net/http"

	"site-editor-api/internal/entities"
	api "site-editor-api/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, entities.ErrEditorNotFound):
		status = http.StatusNotFound
	}

	return c.Status(status).JSON(errorResponse(err.Error()))
}

func errorResponse(msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: msg}
}
