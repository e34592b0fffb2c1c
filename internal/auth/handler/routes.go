package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, requireAuth fiber.Handler) {
	auth := app.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", h.Logout)

	auth.Post("/change-password", requireAuth, h.ChangePassword)
	auth.Get("/me", requireAuth, h.Me)
	auth.Patch("/profile", requireAuth, h.UpdateProfile)
}
