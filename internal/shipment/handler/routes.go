package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *ShipmentHandler, requireAuth fiber.Handler) {
	shipments := app.Group("/shipments", requireAuth)

	shipments.Post("/", h.Create)
	shipments.Get("/", h.List)
	// Registered before ":id" so the literal path wins.
	shipments.Get("/stats", h.Stats)
	shipments.Get("/:id", h.Get)
	shipments.Patch("/:id/deliver", h.MarkDelivered)
	shipments.Patch("/:id", h.Update)
	shipments.Delete("/:id", h.Delete)
}
