package middleware

import (
	"net/http"
	"strings"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/token"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the fiber locals key the verified token claims live under.
const ClaimsKey = "claims"

// RequireAuth verifies the bearer token and stores its claims in locals.
func RequireAuth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "missing bearer token"})
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "invalid or expired token"})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// RequireAdmin rejects requests whose token role is not the admin role.
// It must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(ClaimsKey).(*token.Claims)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "missing bearer token"})
		}
		if claims.Role != entities.RoleAdmin {
			return c.Status(http.StatusForbidden).JSON(dto.ErrorResponse{Detail: "admin role required"})
		}
		return c.Next()
	}
}
