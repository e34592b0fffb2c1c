package response

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/itsaryankaushik/Shipsy-sub001/internal/errors"
)

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func OK(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error maps a service error onto the envelope. Unknown errors become an
// opaque 500 so driver or runtime details never leak to the client.
func Error(c *fiber.Ctx, err error) error {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return fail(c, fiber.StatusBadRequest, "VALIDATION_ERROR", ve.Error(), ve.Fields)
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error(), nil)
	case errors.Is(err, apperrors.ErrInvalidToken), errors.Is(err, apperrors.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", apperrors.ErrUnauthorized.Error(), nil)
	case errors.Is(err, apperrors.ErrEmailAlreadyInUse):
		return fail(c, fiber.StatusConflict, "CONFLICT", err.Error(), nil)
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCustomerNotFound),
		errors.Is(err, apperrors.ErrShipmentNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	default:
		return fail(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	}
}

func fail(c *fiber.Ctx, status int, code, message string, details map[string]string) error {
	return c.Status(status).JSON(Envelope{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message, Details: details},
	})
}
