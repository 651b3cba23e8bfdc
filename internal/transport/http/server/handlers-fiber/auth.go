package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostLogin exchanges credentials for a bearer token.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	auth, err := h.uc.Login(c.Context(), entities.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		h.log.Infow("login rejected", "email", body.Email)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.TokenResponse{
		AccessToken: auth.AccessToken,
		TokenType:   auth.TokenType,
	})
}
