package handlers_fiber

import (
	"net/http"

	"site-editor-api/internal/mapper"
	api "site-editor-api/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetAbout returns the about page, including a pending edit if there is one.
func (h *Handler) GetAbout(c *fiber.Ctx) error {
	page, err := h.uc.ReadPage(c.Context(), h.about)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPage(*page))
}

// PutAbout publishes new about page text as a pull request.
func (h *Handler) PutAbout(c *fiber.Ctx) error {
	var body api.PutAboutRequestBody
	if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
		return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
	}

	page, err := h.uc.PublishPageEdit(c.Context(), h.about, body.Text, body.GithubRef)
	if err != nil {
		h.log.Infow("page edit rejected", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIPage(*page))
}
