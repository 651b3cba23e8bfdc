package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostEmployee creates an employee. An inline EmployeeImage data URL is
// written to the upload directory before the insert.
func (h *Handler) PostEmployee(c *fiber.Ctx) error {
	var body dto.EmployeeCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	in := body.ToEntity()
	if body.EmployeeImage != nil && *body.EmployeeImage != "" {
		path, err := h.store.SaveBase64Image(*body.EmployeeImage)
		if err != nil {
			return badRequest(c, "invalid employee image")
		}
		in.ImagePath = &path
	}

	employee, err := h.uc.CreateEmployee(c.Context(), in)
	if err != nil {
		h.log.Errorw("failed to create employee", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.FromEmployee(*employee))
}

// PutEmployee partially updates an employee.
func (h *Handler) PutEmployee(c *fiber.Ctx) error {
	id, err := pathID(c, "emp_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.EmployeeUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	patch := body.ToPatch()
	if body.EmployeeImage != nil && *body.EmployeeImage != "" {
		path, err := h.store.SaveBase64Image(*body.EmployeeImage)
		if err != nil {
			return badRequest(c, "invalid employee image")
		}
		patch.ImagePath = &path
	}

	if err := h.uc.UpdateEmployee(c.Context(), id, patch); err != nil {
		h.log.Errorw("failed to update employee", "emp_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "employee updated successfully"})
}

// DeleteEmployee soft-deletes an employee.
func (h *Handler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := pathID(c, "emp_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	deletedBy, err := queryID(c, "deleted_by")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteEmployee(c.Context(), id, deletedBy); err != nil {
		h.log.Errorw("failed to delete employee", "emp_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "employee deleted successfully"})
}

// GetAllEmployees lists active employees.
func (h *Handler) GetAllEmployees(c *fiber.Ctx) error {
	employees, err := h.uc.ListEmployees(c.Context())
	if err != nil {
		h.log.Errorw("failed to list employees", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromEmployees(employees))
}

// PostEmployeesPaginated returns one window of a company's employees.
func (h *Handler) PostEmployeesPaginated(c *fiber.Ctx) error {
	var body dto.EmployeePageRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	filter := entities.EmployeePageFilter{
		PageRequest: entities.PageRequest{Page: body.Page, Limit: body.PageLimit},
		CompanyID:   body.CompanyID,
		RoleID:      body.RoleID,
		Search:      body.Search,
	}
	page, err := h.uc.PaginateEmployees(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to paginate employees", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromEmployeePage(page))
}
