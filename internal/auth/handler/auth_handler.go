package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/auth/dto"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/auth/service"
	apperrors "github.com/itsaryankaushik/Shipsy-sub001/internal/errors"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/middleware"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/response"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/validation"
)

type AuthHandler struct {
	users  *service.UserService
	tokens service.TokenGenerator
}

func NewAuthHandler(users *service.UserService, tokens service.TokenGenerator) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.NewValidationError("body", "invalid request body"))
	}

	if err := validation.Struct(input); err != nil {
		return response.Error(c, err)
	}

	user, err := h.users.Register(c.Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusCreated, "account created", dto.NewUserOutput(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.NewValidationError("body", "invalid request body"))
	}

	if err := validation.Struct(input); err != nil {
		return response.Error(c, err)
	}

	out, err := h.users.Login(c.Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	h.setAuthCookies(c, out.Tokens.AccessToken, out.Tokens.RefreshToken)

	return response.OK(c, fiber.StatusOK, "login successful", out)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	// An empty body is fine; the cookie is the fallback transport.
	_ = c.BodyParser(&input)

	if input.RefreshToken == "" {
		input.RefreshToken = c.Cookies(middleware.RefreshTokenCookie)
	}

	if input.RefreshToken == "" {
		return response.Error(c, apperrors.ErrInvalidToken)
	}

	pair, err := h.users.Refresh(c.Context(), input.RefreshToken)
	if err != nil {
		return response.Error(c, err)
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)

	return response.OK(c, fiber.StatusOK, "token refreshed", pair)
}

// Logout is stateless: tokens stay valid until expiry, the server only
// instructs the client to discard its copies.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearAuthCookies(c)

	return response.OK(c, fiber.StatusOK, "logged out", nil)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.NewValidationError("body", "invalid request body"))
	}

	if err := validation.Struct(input); err != nil {
		return response.Error(c, err)
	}

	if err := h.users.ChangePassword(c.Context(), claims.UserID, input); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "password changed", nil)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	user, err := h.users.GetProfile(c.Context(), claims.UserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "", dto.NewUserOutput(user))
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	var input dto.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.NewValidationError("body", "invalid request body"))
	}

	if err := validation.Struct(input); err != nil {
		return response.Error(c, err)
	}

	user, err := h.users.UpdateProfile(c.Context(), claims.UserID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "profile updated", dto.NewUserOutput(user))
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.tokens.AccessTokenTTL().Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     middleware.RefreshTokenCookie,
		Value:    refreshToken,
		Path:     "/auth",
		MaxAge:   int(h.tokens.RefreshTokenTTL().Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Path:     "/",
		Expires:  expired,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     middleware.RefreshTokenCookie,
		Path:     "/auth",
		Expires:  expired,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
