package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostUser creates a login account. The route is admin-gated; the plaintext
// password is hashed in the service layer and never returned.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body dto.UserCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	user, err := h.uc.CreateUser(c.Context(), body.ToEntity())
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.FromUser(*user))
}

// PutUser partially updates a user.
func (h *Handler) PutUser(c *fiber.Ctx) error {
	id, err := pathID(c, "user_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.UserUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	patch, newPassword := body.ToPatch()
	if err := h.uc.UpdateUser(c.Context(), id, patch, newPassword); err != nil {
		h.log.Errorw("failed to update user", "user_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "user updated successfully"})
}

// DeleteUser soft-deletes a user.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c, "user_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	deletedBy, err := queryID(c, "deleted_by")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteUser(c.Context(), id, deletedBy); err != nil {
		h.log.Errorw("failed to delete user", "user_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "user deleted successfully"})
}

// GetAllUsers lists active users.
func (h *Handler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromUsers(users))
}

// PostUsersPaginated returns one window of users with optional filters.
func (h *Handler) PostUsersPaginated(c *fiber.Ctx) error {
	var body dto.UserPageRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	filter := entities.UserPageFilter{
		PageRequest: entities.PageRequest{Page: body.Page, Limit: body.PageLimit},
		CompanyID:   body.CompanyID,
		RoleID:      body.RoleID,
		Search:      body.Search,
	}
	page, err := h.uc.PaginateUsers(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to paginate users", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromUserPage(page))
}
