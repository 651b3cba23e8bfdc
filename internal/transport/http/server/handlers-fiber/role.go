package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostRole creates a company-scoped role.
func (h *Handler) PostRole(c *fiber.Ctx) error {
	var body dto.RoleCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	role, err := h.uc.CreateRole(c.Context(), body.ToEntity())
	if err != nil {
		h.log.Errorw("failed to create role", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.FromRole(*role))
}

// PutRole partially updates a role.
func (h *Handler) PutRole(c *fiber.Ctx) error {
	id, err := pathID(c, "role_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.RoleUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.UpdateRole(c.Context(), id, body.ToPatch()); err != nil {
		h.log.Errorw("failed to update role", "role_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "role updated successfully"})
}

// DeleteRole soft-deletes a role.
func (h *Handler) DeleteRole(c *fiber.Ctx) error {
	id, err := pathID(c, "role_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	deletedBy, err := queryID(c, "deleted_by")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteRole(c.Context(), id, deletedBy); err != nil {
		h.log.Errorw("failed to delete role", "role_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "role deleted successfully"})
}

// GetAllRoles lists active roles with their company name.
func (h *Handler) GetAllRoles(c *fiber.Ctx) error {
	roles, err := h.uc.ListRoles(c.Context())
	if err != nil {
		h.log.Errorw("failed to list roles", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromRoles(roles))
}

// PostRolesPaginated returns one window of roles.
func (h *Handler) PostRolesPaginated(c *fiber.Ctx) error {
	var body dto.RolePageRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	page, err := h.uc.PaginateRoles(c.Context(), entities.PageRequest{Page: body.Page, Limit: body.PageLimit})
	if err != nil {
		h.log.Errorw("failed to paginate roles", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromRolePage(page))
}
