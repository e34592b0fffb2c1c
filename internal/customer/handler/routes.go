package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *CustomerHandler, requireAuth fiber.Handler) {
	customers := app.Group("/customers", requireAuth)

	customers.Post("/", h.Create)
	customers.Get("/", h.List)
	customers.Get("/:id", h.Get)
	customers.Patch("/:id", h.Update)
	customers.Delete("/:id", h.Delete)
}
