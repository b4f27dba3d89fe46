// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"site-editor-api/internal/entities"
	"site-editor-api/internal/usecase"

	"go.uber.org/zap"
)

// Handler implements oapi.ServerInterface using service layer interfaces.
type Handler struct {
	log   *zap.SugaredLogger
	uc    usecase.InterfaceUsecase
	about entities.PageSpec
}

// NewHandler constructs an HTTP server with service dependencies.
// about describes the page served under /about.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, about entities.PageSpec) *Handler {
	return &Handler{
		log:   log,
		uc:    usecase,
		about: about,
	}
}
