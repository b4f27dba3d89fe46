package handlers_fiber

import (
	"net/http"

	"site-editor-api/internal/mapper"
	api "site-editor-api/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetEditors returns the roster sorted by name.
func (h *Handler) GetEditors(c *fiber.Ctx) error {
	editors, err := h.uc.ListEditors(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIEditorList(editors))
}

// PostEditors adds an editor.
func (h *Handler) PostEditors(c *fiber.Ctx) error {
	var body api.PostEditorsRequestBody
	if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
		return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
	}

	editor, err := h.uc.CreateEditor(c.Context(), body.Name, body.Email)
	if err != nil {
		h.log.Infow("editor request rejected", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIEditor(*editor))
}

// PutEditors changes the supplied fields of an editor.
func (h *Handler) PutEditors(c *fiber.Ctx) error {
	var body api.PutEditorsRequestBody
	if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
		return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
	}

	editor, err := h.uc.UpdateEditor(c.Context(), body.Id, mapper.FromOAPIEditorPatch(body))
	if err != nil {
		h.log.Infow("editor request rejected", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIEditor(*editor))
}

// DeleteEditors removes the editor named by the id query parameter.
func (h *Handler) DeleteEditors(c *fiber.Ctx, params api.DeleteEditorsParams) error {
	if err := h.uc.DeleteEditor(c.Context(), params.Id); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.SuccessResponse{Success: true})
}
