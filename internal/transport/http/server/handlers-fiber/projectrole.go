package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostProjectRole creates a project role.
func (h *Handler) PostProjectRole(c *fiber.Ctx) error {
	var body dto.ProjectRoleCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.CreateProjectRole(c.Context(), body.ToEntity()); err != nil {
		h.log.Errorw("failed to create project role", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.MessageResponse{Message: "project role created successfully"})
}

// PutProjectRole partially updates a project role.
func (h *Handler) PutProjectRole(c *fiber.Ctx) error {
	id, err := pathID(c, "project_role_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.ProjectRoleUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.UpdateProjectRole(c.Context(), id, body.ToPatch()); err != nil {
		h.log.Errorw("failed to update project role", "project_role_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "project role updated successfully"})
}

// DeleteProjectRole soft-deletes a project role.
func (h *Handler) DeleteProjectRole(c *fiber.Ctx) error {
	id, err := pathID(c, "project_role_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	deletedBy, err := queryID(c, "deleted_by")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteProjectRole(c.Context(), id, deletedBy); err != nil {
		h.log.Errorw("failed to delete project role", "project_role_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "project role deleted successfully"})
}

// GetProjectRoles lists active project roles.
func (h *Handler) GetProjectRoles(c *fiber.Ctx) error {
	roles, err := h.uc.ListProjectRoles(c.Context())
	if err != nil {
		h.log.Errorw("failed to list project roles", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromProjectRoles(roles))
}
