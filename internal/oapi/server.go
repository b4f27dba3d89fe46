package oapi

import (
	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /about)
	GetAbout(c *fiber.Ctx) error
	// (PUT /about)
	PutAbout(c *fiber.Ctx) error
	// (GET /editors)
	GetEditors(c *fiber.Ctx) error
	// (POST /editors)
	PostEditors(c *fiber.Ctx) error
	// (PUT /editors)
	PutEditors(c *fiber.Ctx) error
	// (DELETE /editors)
	DeleteEditors(c *fiber.Ctx, params DeleteEditorsParams) error
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// MiddlewareFunc runs before every API route.
type MiddlewareFunc fiber.Handler

// GetAbout operation middleware
func (siw *ServerInterfaceWrapper) GetAbout(c *fiber.Ctx) error {
	return siw.Handler.GetAbout(c)
}

// PutAbout operation middleware
func (siw *ServerInterfaceWrapper) PutAbout(c *fiber.Ctx) error {
	return siw.Handler.PutAbout(c)
}

// GetEditors operation middleware
func (siw *ServerInterfaceWrapper) GetEditors(c *fiber.Ctx) error {
	return siw.Handler.GetEditors(c)
}

// PostEditors operation middleware
func (siw *ServerInterfaceWrapper) PostEditors(c *fiber.Ctx) error {
	return siw.Handler.PostEditors(c)
}

// PutEditors operation middleware
func (siw *ServerInterfaceWrapper) PutEditors(c *fiber.Ctx) error {
	return siw.Handler.PutEditors(c)
}

// DeleteEditors operation middleware
func (siw *ServerInterfaceWrapper) DeleteEditors(c *fiber.Ctx) error {
	var params DeleteEditorsParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid format for parameter id: " + err.Error()})
	}
	return siw.Handler.DeleteEditors(c, params)
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []MiddlewareFunc
}

// RegisterHandlers mounts every API route on router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions mounts every API route behind options.Middlewares.
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	for _, m := range options.Middlewares {
		router.Use(fiber.Handler(m))
	}

	router.Get(options.BaseURL+"/about", wrapper.GetAbout)
	router.Put(options.BaseURL+"/about", wrapper.PutAbout)
	router.Get(options.BaseURL+"/editors", wrapper.GetEditors)
	router.Post(options.BaseURL+"/editors", wrapper.PostEditors)
	router.Put(options.BaseURL+"/editors", wrapper.PutEditors)
	router.Delete(options.BaseURL+"/editors", wrapper.DeleteEditors)
}
