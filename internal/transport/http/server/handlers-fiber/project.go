package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostProject creates a project.
func (h *Handler) PostProject(c *fiber.Ctx) error {
	var body dto.ProjectCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	in, err := body.ToEntity()
	if err != nil {
		return writeError(c, err)
	}

	project, err := h.uc.CreateProject(c.Context(), in)
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.FromProject(*project))
}

// PutProject partially updates a project.
func (h *Handler) PutProject(c *fiber.Ctx) error {
	id, err := pathID(c, "project_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.ProjectUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	patch, err := body.ToPatch()
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.UpdateProject(c.Context(), id, patch); err != nil {
		h.log.Errorw("failed to update project", "project_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "project updated successfully"})
}

// DeleteProject soft-deletes a project.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	id, err := pathID(c, "project_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	deletedBy, err := queryID(c, "deleted_by")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteProject(c.Context(), id, deletedBy); err != nil {
		h.log.Errorw("failed to delete project", "project_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "project deleted successfully"})
}

// GetAllProjects lists active projects.
func (h *Handler) GetAllProjects(c *fiber.Ctx) error {
	projects, err := h.uc.ListProjects(c.Context())
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromProjects(projects))
}

// GetProject returns one active project by id.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	id, err := pathID(c, "project_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	project, err := h.uc.GetProject(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromProject(*project))
}

// GetProjectsByManager lists active projects managed by one employee.
func (h *Handler) GetProjectsByManager(c *fiber.Ctx) error {
	managerID, err := queryID(c, "emp_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	projects, err := h.uc.ProjectsByManager(c.Context(), managerID)
	if err != nil {
		h.log.Errorw("failed to list projects by manager", "emp_id", managerID, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromProjects(projects))
}

// PostProjectsPaginated returns one window of projects with optional filters.
func (h *Handler) PostProjectsPaginated(c *fiber.Ctx) error {
	var body dto.ProjectPageRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	filter := entities.ProjectPageFilter{
		PageRequest: entities.PageRequest{Page: body.Page, Limit: body.PageLimit},
		Name:        body.Name,
		Status:      body.Status,
		Priority:    body.Priority,
		ManagerID:   body.ProjectManager,
	}
	page, err := h.uc.PaginateProjects(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to paginate projects", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromProjectPage(page))
}
