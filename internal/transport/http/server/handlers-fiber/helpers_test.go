package handlers_fiber

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"site-editor-api/internal/entities"
	api "site-editor-api/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "validation",
			err:     entities.Errorf(entities.ErrInvalidArgument, "A name is required to create an editor."),
			status:  http.StatusBadRequest,
			message: "A name is required to create an editor.",
		},
		{
			name:    "conflict",
			err:     entities.Errorf(entities.ErrConflict, "An editor already exists with the email a@b.c"),
			status:  http.StatusBadRequest,
			message: "An editor already exists with the email a@b.c",
		},
		{
			name:    "not_found",
			err:     entities.Errorf(entities.ErrEditorNotFound, "No editor exists with the id rec1"),
			status:  http.StatusNotFound,
			message: "No editor exists with the id rec1",
		},
		{
			name:    "publish",
			err:     entities.Wrap(entities.ErrPublish, errors.New("Bad credentials")),
			status:  http.StatusInternalServerError,
			message: "Bad credentials",
		},
		{
			name:    "unclassified",
			err:     errors.New("connection refused"),
			status:  http.StatusInternalServerError,
			message: "connection refused",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.message, body.Error)
			require.Nil(t, body.IsAuthorized)
		})
	}
}
