package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostProjectEmployee assigns an employee to a project under a project role.
func (h *Handler) PostProjectEmployee(c *fiber.Ctx) error {
	var body dto.ProjectEmployeeCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.CreateProjectEmployee(c.Context(), body.ToEntity()); err != nil {
		h.log.Errorw("failed to create project employee", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.MessageResponse{Message: "project employee created successfully"})
}

// PutProjectEmployee partially updates a project assignment.
func (h *Handler) PutProjectEmployee(c *fiber.Ctx) error {
	id, err := pathID(c, "project_employee_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.ProjectEmployeeUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.UpdateProjectEmployee(c.Context(), id, body.ToPatch()); err != nil {
		h.log.Errorw("failed to update project employee", "project_employee_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "project employee updated successfully"})
}

// DeleteProjectEmployee soft-deletes a project assignment.
func (h *Handler) DeleteProjectEmployee(c *fiber.Ctx) error {
	id, err := pathID(c, "project_employee_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	deletedBy, err := queryID(c, "deleted_by")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteProjectEmployee(c.Context(), id, deletedBy); err != nil {
		h.log.Errorw("failed to delete project employee", "project_employee_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "project employee deleted successfully"})
}

// GetProjectEmployees lists assignments filtered by the tri-state status query.
func (h *Handler) GetProjectEmployees(c *fiber.Ctx) error {
	status, err := statusQuery(c, entities.StatusActive)
	if err != nil {
		return writeError(c, err)
	}

	assignments, err := h.uc.ListProjectEmployees(c.Context(), status)
	if err != nil {
		h.log.Errorw("failed to list project employees", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromProjectEmployees(assignments))
}

// GetProjectEmployeesByCompanyProject lists assignments of one project of a
// company.
func (h *Handler) GetProjectEmployeesByCompanyProject(c *fiber.Ctx) error {
	companyID, err := queryID(c, "company_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	projectID, err := queryID(c, "project_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	status, err := statusQuery(c, entities.StatusActive)
	if err != nil {
		return writeError(c, err)
	}

	filter := entities.ProjectEmployeeFilter{
		CompanyID: companyID,
		ProjectID: projectID,
		Status:    status,
	}
	assignments, err := h.uc.ProjectEmployeesByCompanyProject(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to list project employees by company project",
			"company_id", companyID, "project_id", projectID, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromProjectEmployees(assignments))
}
