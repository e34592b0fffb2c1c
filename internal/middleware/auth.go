package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/auth/service"
	apperrors "github.com/itsaryankaushik/Shipsy-sub001/internal/errors"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/response"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"

	identityKey = "identity"
)

type TokenVerifier interface {
	Verify(tokenString string, class service.TokenClass) (*service.Claims, error)
}

// RequireAuth extracts a bearer token from the Authorization header, falling
// back to the access cookie, and verifies it against the access-class secret.
// Missing, malformed and expired tokens all reject with the same 401; valid
// claims land in the request locals for the handler to scope its queries by.
func RequireAuth(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return response.Error(c, apperrors.ErrUnauthorized)
		}

		claims, err := tokens.Verify(tokenString, service.AccessToken)
		if err != nil {
			return response.Error(c, apperrors.ErrUnauthorized)
		}

		c.Locals(identityKey, claims)

		return c.Next()
	}
}

// IdentityFromCtx returns the verified claims RequireAuth stored, or nil when
// the route was not protected.
func IdentityFromCtx(c *fiber.Ctx) *service.Claims {
	claims, _ := c.Locals(identityKey).(*service.Claims)
	return claims
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		// A present but non-bearer header does not fall through to the cookie.
		return ""
	}

	return c.Cookies(AccessTokenCookie)
}
